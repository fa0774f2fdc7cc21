// Package cmd implements the command-line interface for mu.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/shadowheroku/mu/color"
	"github.com/shadowheroku/mu/constant"
	"github.com/shadowheroku/mu/cookies"
	"github.com/shadowheroku/mu/icon"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/log"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/tui"
	"github.com/shadowheroku/mu/util"
	"github.com/shadowheroku/mu/version"
	"github.com/shadowheroku/mu/where"
	"github.com/shadowheroku/mu/youtube"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("cookie-jar", "C", "", "Authenticate with a specific cookie jar instead of a random one")

	rootCmd.Flags().BoolP("video", "V", false, "Play tracks with video instead of audio only")
	rootCmd.Flags().BoolP("continue", "c", false, "Continue from the playback history")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the mu application.
var rootCmd = &cobra.Command{
	Use:   constant.Mu + " [query]",
	Short: "A minimalist command-line interface to the YouTube music pipeline",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - search, stream and download music from the terminal"),
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()
		CheckPlayer()

		options := tui.Options{
			API:      newAPI(),
			Query:    strings.Join(args, " "),
			Video:    lo.Must(cmd.Flags().GetBool("video")),
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		handleErr(tui.Run(&options))
	},
}

// newAPI assembles the adapter for one command invocation, honoring the
// persistent cookie-jar override.
func newAPI() *youtube.API {
	if jar := lo.Must(rootCmd.PersistentFlags().GetString("cookie-jar")); jar != "" {
		return youtube.New(youtube.WithCookies(cookies.Fixed(jar)))
	}
	return youtube.New()
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

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
