package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubelist-cli/tubelist/color"
	"github.com/tubelist-cli/tubelist/export"
	"github.com/tubelist-cli/tubelist/icon"
	"github.com/tubelist-cli/tubelist/key"
	"github.com/tubelist-cli/tubelist/locator"
	"github.com/tubelist-cli/tubelist/provider"
	"github.com/tubelist-cli/tubelist/style"
	"github.com/tubelist-cli/tubelist/util"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	addExportFlags(exportCmd)
	exportCmd.SetOut(os.Stdout)
}

func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("dry-run", "n", false, "Print the document to stdout instead of writing the output file")
	cmd.Flags().BoolP("json", "j", false, "Print the export summary as JSON")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "json")
}

// exportCmd fetches a playlist and writes its JSON document.
var exportCmd = &cobra.Command{
	Use:               "export [playlist-url]",
	Short:             "Fetch a playlist and write its JSON document",
	Example:           "  tubelist export 'https://www.youtube.com/playlist?list=PL...' -o videos.json",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionLocators,
	Run:               runExport,
}

func runExport(cmd *cobra.Command, args []string) {
	var arg string
	if len(args) == 1 {
		arg = args[0]
	}

	playlist, ok := locator.Resolve(arg, viper.GetString(key.PlaylistURL)).Get()
	if !ok {
		handleErr(errors.New("no playlist given: pass a URL or set " + key.PlaylistURL))
	}

	name := viper.GetString(key.ProviderName)
	p, found := provider.Get(name)
	if !found {
		handleErr(fmt.Errorf("unknown provider %q, available: %s", name, strings.Join(provider.IDs(), ", ")))
	}

	CheckDependencies(p)

	client, err := p.CreateClient()
	handleErr(err)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var (
		dryRun = lo.Must(cmd.Flags().GetBool("dry-run"))
		asJson = lo.Must(cmd.Flags().GetBool("json"))
	)

	erase := util.PrintErasable(os.Stderr, fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), playlist))
	summary, err := export.Run(ctx, &export.Options{
		Client:      client,
		Locator:     playlist,
		Destination: viper.GetString(key.OutputPath),
		Fetch:       provider.Options(),
		DryRun:      dryRun,
		Out:         cmd.OutOrStdout(),
	})
	erase()
	handleErr(err)

	switch {
	case dryRun:
		return
	case asJson:
		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(summary))
	default:
		cmd.Printf(
			"%s wrote %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(summary.Written, "video", "videos"),
			style.Fg(color.Purple)(summary.Destination),
		)
		if summary.Skipped > 0 {
			cmd.Println(style.Faint(fmt.Sprintf("skipped %s", util.Quantify(summary.Skipped, "unavailable video", "unavailable videos"))))
		}
	}
}
