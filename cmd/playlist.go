// Package cmd implements the command-line interface for mu.
package cmd

import (
	"context"
	"os"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/youtube"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playlistCmd)
	playlistCmd.Flags().IntP("limit", "l", 10, "Maximum number of entries to list")
	playlistCmd.Flags().BoolP("links", "L", false, "Print full watch links instead of bare video ids")
	playlistCmd.SetOut(os.Stdout)
}

// playlistCmd lists the video ids of a playlist.
var playlistCmd = &cobra.Command{
	Use:   "playlist <link>",
	Short: "List the video ids of a playlist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		limit := lo.Must(cmd.Flags().GetInt("limit"))
		ids, err := newAPI().Playlist(context.Background(), args[0], limit, 0, false)
		handleErr(err)

		asLinks := lo.Must(cmd.Flags().GetBool("links"))
		for _, id := range ids {
			if asLinks {
				cmd.Println(youtube.WatchURL(id))
			} else {
				cmd.Println(id)
			}
		}
	},
}
