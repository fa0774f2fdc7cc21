// Package cmd implements the command-line interface for mu.
package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/mini"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("video", "V", false, "Play tracks with video instead of audio only")
	miniCmd.Flags().BoolP("continue", "c", false, "Continue from the playback history")
}

// miniCmd launches the application in a lightweight, minimalist terminal interface.
var miniCmd = &cobra.Command{
	Use:   "mini [query]",
	Short: "Launch the application in a lightweight, minimalist terminal interface",
	Long:  `Initialize a streamlined, minimalist terminal UI for track search and playback.`,
	Args:  cobra.ArbitraryArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		CheckDependencies()
		CheckPlayer()
	},
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{
			API:      newAPI(),
			Query:    strings.Join(args, " "),
			Video:    lo.Must(cmd.Flags().GetBool("video")),
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		err := mini.Run(&options)

		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}
