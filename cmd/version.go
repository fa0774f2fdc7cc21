// Package cmd implements the command-line interface for mu.
package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/color"
	"github.com/shadowheroku/mu/constant"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/version"
	"github.com/spf13/cobra"
)

// buildInfo collects everything the version card renders.
type buildInfo struct {
	App      string
	Version  string
	Revision string
	BuiltAt  string
	BuiltBy  string
	OS       string
	Arch     string
}

var versionTemplate = template.Must(template.New("version").Funcs(template.FuncMap{
	"accent": style.Fg(color.Purple),
	"faint":  style.Faint,
	"bold":   style.Bold,
}).Parse(`{{ accent "♪" }} {{ accent .App }}

  {{ faint "Version" }}     {{ bold .Version }}
  {{ faint "Revision" }}    {{ bold .Revision }}
  {{ faint "Build Date" }}  {{ bold .BuiltAt }}
  {{ faint "Built By" }}    {{ bold .BuiltBy }}
  {{ faint "Platform" }}    {{ bold .OS }}/{{ bold .Arch }}
`))

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print the bare version string")
}

// versionCmd prints the version card with the metadata the build stamped in,
// then lets version.Notify point at a newer release if one exists.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), buildInfo{
			App:      constant.Mu,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
		}))
	},
}
