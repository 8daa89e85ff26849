package cmd

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubelist-cli/tubelist/color"
	"github.com/tubelist-cli/tubelist/icon"
	"github.com/tubelist-cli/tubelist/key"
	"github.com/tubelist-cli/tubelist/provider"
	"github.com/tubelist-cli/tubelist/style"
)

func init() {
	rootCmd.AddCommand(providersCmd)
	providersCmd.SetOut(os.Stdout)
}

// providersCmd lists the available metadata providers.
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List available metadata providers",
	Run: func(cmd *cobra.Command, args []string) {
		selected := viper.GetString(key.ProviderName)

		for _, p := range provider.Builtins() {
			status := style.Fg(color.Green)(icon.Get(icon.Success))
			if _, err := exec.LookPath(binaryOf(p)); err != nil {
				status = style.Fg(color.Red)(icon.Get(icon.Fail))
			}

			line := p.ID + " " + style.Faint("("+p.Name+")")
			if p.ID == selected {
				line += " " + style.Fg(color.Yellow)("selected")
			}

			cmd.Println(status, line)
		}
	},
}
