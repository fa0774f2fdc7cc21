// Package cmd implements the command-line interface for mu.
package cmd

import (
	"context"
	"os"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/open"
	"github.com/shadowheroku/mu/youtube"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(streamCmd)
	streamCmd.Flags().BoolP("video", "V", false, "Probe the watchable rendition instead of audio")
	streamCmd.Flags().BoolP("open", "o", false, "Hand the stream URL to the system default player")
	streamCmd.SetOut(os.Stdout)
}

// streamCmd resolves a direct stream URL without downloading anything.
var streamCmd = &cobra.Command{
	Use:   "stream <link>",
	Short: "Resolve a direct stream URL for a video",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		kind := youtube.MediaAudio
		if lo.Must(cmd.Flags().GetBool("video")) {
			kind = youtube.MediaVideo
		}

		url, err := newAPI().StreamURL(context.Background(), args[0], kind)
		handleErr(err)

		cmd.Println(url)

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start(url))
		}
	},
}
