// Package cmd implements the command-line interface for mu.
package cmd

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/player"
	"github.com/shadowheroku/mu/query"
	"github.com/shadowheroku/mu/youtube"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().BoolP("video", "V", false, "Play the video instead of audio only")
	playCmd.Flags().BoolP("detach", "d", false, "Leave the player running and return immediately")
}

// playCmd resolves the top hit for a query and hands it to the configured
// playback engine. Without --detach it blocks until playback ends.
var playCmd = &cobra.Command{
	Use:   "play [query]",
	Short: "Play the top hit for a query",
	Args:  cobra.ArbitraryArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		CheckDependencies()
		CheckPlayer()
	},
	Run: func(cmd *cobra.Command, args []string) {
		q := strings.Join(args, " ")
		if q == "" {
			q = askQuery()
		}

		video := lo.Must(cmd.Flags().GetBool("video"))
		kind := youtube.MediaAudio
		if video {
			kind = youtube.MediaVideo
		}

		ctx := context.Background()
		api := newAPI()

		track, err := api.Details(ctx, q, false)
		handleErr(err)

		_ = query.Remember(q, 1)

		link, err := api.StreamURL(ctx, track.Link, kind)
		if err != nil {
			// The player resolves watch pages itself through its yt-dlp hook.
			link = track.Link
		}

		backend := player.New(video)
		handleErr(backend.Play(link, track.Title))

		printTrack(cmd, track)

		if lo.Must(cmd.Flags().GetBool("detach")) {
			return
		}

		<-backend.Wait()
	},
}
