package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubelist-cli/tubelist/color"
	"github.com/tubelist-cli/tubelist/icon"
	"github.com/tubelist-cli/tubelist/key"
	"github.com/tubelist-cli/tubelist/provider"
	"github.com/tubelist-cli/tubelist/style"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetOut(os.Stdout)
}

// checkCmd verifies that the configured provider can run.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the configured metadata provider is installed",
	Run: func(cmd *cobra.Command, args []string) {
		name := viper.GetString(key.ProviderName)
		p, ok := provider.Get(name)
		if !ok {
			handleErr(fmt.Errorf("unknown provider %q", name))
		}

		CheckDependencies(p)
		path, _ := exec.LookPath(binaryOf(p))
		cmd.Printf("%s %s found at %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), p.Name, path)
	},
}

// binaryOf resolves the executable p runs, honouring provider.binary.
func binaryOf(p *provider.Provider) string {
	if configured := viper.GetString(key.ProviderBinary); configured != "" {
		return configured
	}
	return p.Binary
}

// CheckDependencies exits with an explanatory box when the provider's executable is not on PATH.
func CheckDependencies(p *provider.Provider) {
	if p.Binary == "" {
		return
	}

	bin := binaryOf(p)
	if _, err := exec.LookPath(bin); err != nil {
		printMissingDependencyError(bin)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install yt-dlp"
	case "linux":
		installCmd = "pipx install yt-dlp"
	case "windows":
		installCmd = "winget install yt-dlp"
	}

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(color.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.Mauve).Bold(true).Render(installCmd))
	}

	fmt.Fprintln(os.Stderr, style.ErrorBox(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
