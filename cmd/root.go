// Package cmd implements the command-line interface for tubelist.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubelist-cli/tubelist/constant"
	"github.com/tubelist-cli/tubelist/icon"
	"github.com/tubelist-cli/tubelist/key"
	"github.com/tubelist-cli/tubelist/locator"
	"github.com/tubelist-cli/tubelist/log"
	"github.com/tubelist-cli/tubelist/provider"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("url", "", "Playlist to export (overrides "+key.PlaylistURL+")")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("url", completionLocators))
	lo.Must0(viper.BindPFlag(key.PlaylistURL, rootCmd.PersistentFlags().Lookup("url")))

	rootCmd.PersistentFlags().StringP("output", "o", "", "File the playlist document is written to")
	lo.Must0(viper.BindPFlag(key.OutputPath, rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.PersistentFlags().StringP("provider", "p", "", "Metadata provider to fetch the playlist with")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return provider.IDs(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.ProviderName, rootCmd.PersistentFlags().Lookup("provider")))

	rootCmd.PersistentFlags().String("binary", "", "Path to the yt-dlp executable")
	lo.Must0(viper.BindPFlag(key.ProviderBinary, rootCmd.PersistentFlags().Lookup("binary")))

	rootCmd.PersistentFlags().IntP("timeout", "t", 0, "Seconds the fetch may take, 0 for no limit")
	lo.Must0(viper.BindPFlag(key.ProviderTimeout, rootCmd.PersistentFlags().Lookup("timeout")))

	addExportFlags(rootCmd)
	rootCmd.SetOut(os.Stdout)
}

// rootCmd exports a playlist when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   constant.Tubelist + " [playlist-url]",
	Short: "Export the videos of a playlist as a JSON document",
	Long: `Fetch the metadata of every video in a playlist through yt-dlp and write
a JSON array of {id, label, type, youtubeId, thumbnail} records.

Unavailable videos are skipped and the remaining ones are numbered from 1.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionLocators,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		runExport(cmd, args)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func completionLocators(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return locator.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
