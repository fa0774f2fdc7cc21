// Package cmd implements the command-line interface for mu.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/shadowheroku/mu/constant"
	"github.com/shadowheroku/mu/icon"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/style"
	"github.com/spf13/viper"
)

// CheckDependencies verifies the availability of required system dependencies.
// Extraction shells out to yt-dlp, which in turn needs ffmpeg for the audio
// conversion step.
func CheckDependencies() {
	for _, dep := range []string{"yt-dlp", "ffmpeg"} {
		if _, err := exec.LookPath(dep); err != nil {
			printMissingDependencyError(dep)
			os.Exit(1)
		}
	}
}

// CheckPlayer verifies the configured playback engine is reachable. IINA
// ships as a macOS app bundle rather than a PATH binary, so it is exempt.
func CheckPlayer() {
	if viper.GetString(key.Player) == "iina" && runtime.GOOS == constant.Darwin {
		return
	}

	if _, err := exec.LookPath("mpv"); err != nil {
		printMissingDependencyError("mpv")
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install " + dep
	case constant.Linux:
		installCmd = "sudo apt install " + dep
	case constant.Windows:
		installCmd = "scoop install " + dep
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
