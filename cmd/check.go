// Package cmd implements the command-line interface for mu.
package cmd

import (
	"context"
	"os"

	"github.com/shadowheroku/mu/icon"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetOut(os.Stdout)
}

// checkCmd runs the download preflight for a link: a public availability
// probe, then a size probe against the configured cap.
var checkCmd = &cobra.Command{
	Use:   "check <link>",
	Short: "Check availability and download size for a link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		var (
			api = newAPI()
			ctx = context.Background()
		)

		ok, err := api.Available(ctx, args[0], false)
		handleErr(err)

		if !ok {
			cmd.Printf("%s media is gone or gated\n", icon.Get(icon.Fail))
			return
		}
		cmd.Printf("%s media is reachable\n", icon.Get(icon.Success))

		size, err := api.FileSize(ctx, args[0], false)
		if err != nil {
			// The size probe needs credentials; reachability alone is still
			// an answer.
			log.Warnf("size probe: %s", err)
			return
		}

		var (
			sizeMB = float64(size) / 1024 / 1024
			capMB  = viper.GetFloat64(key.ExtractorMaxFileSizeMB)
		)

		if capMB > 0 && sizeMB > capMB {
			cmd.Printf("%s %.1f MiB exceeds the %.0f MiB cap\n", icon.Get(icon.Fail), sizeMB, capMB)
			return
		}
		cmd.Printf("%s %.1f MiB within the %.0f MiB cap\n", icon.Get(icon.Success), sizeMB, capMB)
	},
}
