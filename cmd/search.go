// Package cmd implements the command-line interface for mu.
package cmd

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/query"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntP("index", "i", 0, "Zero-based position of the hit to resolve within the first results page")
	searchCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	searchCmd.SetOut(os.Stdout)
}

// searchCmd resolves an arbitrary hit of the first results page.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Resolve the n-th search hit for a query",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		q := strings.Join(args, " ")
		if q == "" {
			q = askQuery()
		}

		index := lo.Must(cmd.Flags().GetInt("index"))
		track, err := newAPI().Slider(context.Background(), q, index, false)
		handleErr(err)

		_ = query.Remember(q, 1)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(track))
			return
		}

		printTrack(cmd, track)
	},
}
