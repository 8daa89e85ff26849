package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubelist-cli/tubelist/color"
	"github.com/tubelist-cli/tubelist/history"
	"github.com/tubelist-cli/tubelist/icon"
	"github.com/tubelist-cli/tubelist/style"
	"github.com/tubelist-cli/tubelist/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Print the history as JSON")
	historyCmd.Flags().IntP("limit", "n", 0, "Show only the most recent exports")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display previous exports",
	Run: func(cmd *cobra.Command, args []string) {
		exports, err := history.Get()
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && limit < len(exports) {
			exports = exports[len(exports)-limit:]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(exports))
			return
		}

		if len(exports) == 0 {
			cmd.Println(style.Faint("No exports yet"))
			return
		}

		for _, e := range lo.Reverse(exports) {
			cmd.Printf(
				"%s %s %s\n",
				icon.Get(icon.Playlist),
				style.Faint(e.At.Local().Format("2006-01-02 15:04")),
				style.Fg(color.Purple)(e.Locator),
			)
			cmd.Printf("  %s to %s", util.Quantify(e.Written, "video", "videos"), e.Destination)
			if e.Skipped > 0 {
				cmd.Print(style.Faint(fmt.Sprintf(", %d skipped", e.Skipped)))
			}
			cmd.Println()
		}
	},
}
