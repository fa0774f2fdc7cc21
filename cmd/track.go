// Package cmd implements the command-line interface for mu.
package cmd

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/shadowheroku/mu/color"
	"github.com/shadowheroku/mu/icon"
	"github.com/shadowheroku/mu/query"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/youtube"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(trackCmd)
	trackCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	trackCmd.SetOut(os.Stdout)
}

// trackCmd resolves the top search hit for a query or pasted link.
var trackCmd = &cobra.Command{
	Use:     "track [query]",
	Short:   "Resolve the top track for a search query or link",
	Aliases: []string{"details"},
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		q := strings.Join(args, " ")
		if q == "" {
			q = askQuery()
		}

		track, err := newAPI().Track(context.Background(), q, false)
		handleErr(err)

		_ = query.Remember(q, 1)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(track))
			return
		}

		printTrack(cmd, track)
	},
}

// askQuery prompts for a search query with history-fed suggestions.
func askQuery() string {
	var q string
	handleErr(survey.AskOne(&survey.Input{
		Message: "What to play?",
		Suggest: query.SuggestMany,
	}, &q, survey.WithValidator(survey.Required)))
	return q
}

func printTrack(cmd *cobra.Command, track youtube.Track) {
	duration := track.Duration
	if duration == "" {
		duration = "live"
	}

	cmd.Printf("%s %s %s\n", icon.Get(icon.Audio), style.Bold(track.Title), style.Faint(duration))
	cmd.Printf("  %s\n", style.Fg(color.Blue)(track.Link))
	if track.Thumbnail != "" {
		cmd.Printf("  %s\n", style.Faint(track.Thumbnail))
	}
}
