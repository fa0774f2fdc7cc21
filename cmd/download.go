// Package cmd implements the command-line interface for mu.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/shadowheroku/mu/color"
	"github.com/shadowheroku/mu/icon"
	"github.com/shadowheroku/mu/internal/ui"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/youtube"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().BoolP("video", "V", false, "Fetch the watchable rendition instead of audio")
	downloadCmd.Flags().Bool("song-audio", false, "Fetch audio in an explicitly picked rendition")
	downloadCmd.Flags().Bool("song-video", false, "Fetch a song video in an explicitly picked rendition")
	downloadCmd.Flags().StringP("format-id", "f", "", "Rendition id to fetch, as listed by formats")
	downloadCmd.Flags().StringP("title", "t", "", "Title to key the fetched file by")
	downloadCmd.Flags().Bool("id", false, "Treat the argument as a bare video id")
	downloadCmd.MarkFlagsMutuallyExclusive("video", "song-audio", "song-video")
	downloadCmd.SetOut(os.Stdout)
}

// downloadCmd fetches media into the local download directory. The plain
// video variant prefers handing back a direct stream URL over downloading.
var downloadCmd = &cobra.Command{
	Use:   "download <link>",
	Short: "Download a track or video",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		var (
			api  = newAPI()
			opts = youtube.DownloadOptions{
				Video:     lo.Must(cmd.Flags().GetBool("video")),
				SongAudio: lo.Must(cmd.Flags().GetBool("song-audio")),
				SongVideo: lo.Must(cmd.Flags().GetBool("song-video")),
				FormatID:  lo.Must(cmd.Flags().GetString("format-id")),
				Title:     lo.Must(cmd.Flags().GetString("title")),
				ID:        lo.Must(cmd.Flags().GetBool("id")),
			}
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Song variants fetch one concrete rendition; ask when none was named.
		if (opts.SongAudio || opts.SongVideo) && opts.FormatID == "" {
			formats, link, err := api.Formats(ctx, args[0], opts.ID)
			handleErr(err)
			if len(formats) == 0 {
				handleErr(fmt.Errorf("no renditions listed for %s", link))
			}

			opts.FormatID = pickFormat(formats).ID
		}

		if (opts.SongAudio || opts.SongVideo) && opts.Title == "" {
			track, err := api.Track(ctx, args[0], opts.ID)
			handleErr(err)
			opts.Title = track.Title
		}

		label := opts.Title
		if label == "" {
			label = args[0]
		}

		program := tea.NewProgram(ui.NewTransfer(label, cancel))
		opts.Progress = func(downloaded, total int64, eta time.Duration) {
			program.Send(ui.ProgressMsg{Downloaded: downloaded, Total: total, ETA: eta})
		}

		var (
			target string
			local  bool
			err    error
		)
		go func() {
			target, local, err = api.Download(ctx, args[0], opts)
			program.Send(ui.DoneMsg{})
		}()

		lo.Must(program.Run())

		if errors.Is(err, context.Canceled) {
			fmt.Printf("%s download stopped\n", icon.Get(icon.Fail))
			return
		}
		handleErr(err)

		if local {
			fmt.Printf("%s saved to %s\n", icon.Get(icon.Success), style.Fg(color.Green)(target))
		} else {
			fmt.Printf("%s streamable at %s\n", icon.Get(icon.Link), style.Fg(color.Blue)(target))
		}
	},
}
