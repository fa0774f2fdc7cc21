// Package cmd implements the command-line interface for mu.
package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/color"
	"github.com/shadowheroku/mu/config"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/where"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Show only variables that are currently set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Show only variables that are currently unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// envCmd lists every environment variable the application reads together
// with its current process value. Config keys surface under their MU_ names,
// plus the config path override.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the supported environment variables",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
		)

		names := make([]string, 0, len(config.EnvExposed)+1)
		for _, key := range config.EnvExposed {
			field := config.Default[key]
			names = append(names, field.Env())
		}

		names = append(names, where.EnvConfigPath)
		slices.Sort(names)

		for _, env := range names {
			value, present := os.LookupEnv(env)

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
