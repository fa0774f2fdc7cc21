// Package cmd implements the command-line interface for mu.
package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/shadowheroku/mu/color"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/where"
	"github.com/spf13/cobra"
)

// whereTarget is one resolvable application directory and the flag that
// selects it.
type whereTarget struct {
	label   string
	resolve func() string
	flag    string
	short   mo.Option[string]
	hidden  bool
}

// whereTargets lists every directory the application owns. Hidden entries
// resolve through their flags but stay out of the summary, they hold
// internal state rather than user-facing files.
var whereTargets = []whereTarget{
	{"Config", where.Config, "config", mo.Some("c"), false},
	{"Downloads", where.Downloads, "downloads", mo.Some("d"), false},
	{"Cookies", where.Cookies, "cookies", mo.Some("k"), false},
	{"Logs", where.Logs, "logs", mo.Some("l"), false},
	{"Cache", where.Cache, "cache", mo.None[string](), true},
	{"Temp", where.Temp, "temp", mo.None[string](), true},
	{"Queries", where.Queries, "queries", mo.None[string](), true},
	{"History", where.History, "history", mo.None[string](), true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	flags := make([]string, 0, len(whereTargets))
	for _, target := range whereTargets {
		if short, ok := target.short.Get(); ok {
			whereCmd.Flags().BoolP(target.flag, short, false, target.label+" path")
		} else {
			whereCmd.Flags().Bool(target.flag, false, target.label+" path")
		}

		if target.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(target.flag))
		}

		flags = append(flags, target.flag)
	}

	whereCmd.MarkFlagsMutuallyExclusive(flags...)
	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints the directories the application reads and writes. With a
// selector flag it prints the bare path only, so the output can feed a cd
// or an ls directly.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the filesystem paths used by the application",
	Run: func(cmd *cobra.Command, args []string) {
		for _, target := range whereTargets {
			if lo.Must(cmd.Flags().GetBool(target.flag)) {
				cmd.Println(target.resolve())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Filter(whereTargets, func(t whereTarget, _ int) bool {
			return !t.hidden
		})

		for i, target := range visible {
			cmd.Printf("%s %s\n", header(target.label), style.Fg(color.Yellow)("--"+target.flag))
			cmd.Println(target.resolve())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
