// Package cmd implements the command-line interface for mu.
package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/icon"
	"github.com/shadowheroku/mu/util"
	"github.com/shadowheroku/mu/where"
	"github.com/spf13/cobra"
)

// clearTarget is one removable application artifact and the flag that
// selects it.
type clearTarget struct {
	label   string
	flag    string
	short   mo.Option[string]
	resolve func() string
}

// clearTargets lists the artifacts that can be removed selectively. History
// and queries are single files, the rest are directories.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"queries history", "queries", mo.Some("q"), where.Queries},
	{"playback history", "history", mo.None[string](), where.History},
	{"downloads directory", "downloads", mo.Some("d"), where.Downloads},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := "clear " + target.label
		if short, ok := target.short.Get(); ok {
			clearCmd.Flags().BoolP(target.flag, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.flag, false, help)
		}
	}
}

// clearCmd removes cached and transient artifacts. Targets that were never
// created count as cleared, so the command is safe to run on a fresh
// install.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear temporary and cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var cleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.flag)) {
				continue
			}

			cleared = true
			erase := util.PrintErasable(fmt.Sprintf(
				"%s Clearing %s...",
				icon.Get(icon.Progress),
				util.Capitalize(target.label),
			))

			path := target.resolve()
			exists, err := filesystem.API().Exists(path)
			handleErr(err)
			if exists {
				handleErr(util.Delete(path))
			}

			erase()
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.label))
		}

		if !cleared {
			handleErr(cmd.Help())
		}
	},
}
