// Package cmd implements the command-line interface for mu.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/shadowheroku/mu/style"
	"github.com/shadowheroku/mu/util"
	"github.com/shadowheroku/mu/youtube"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
	formatsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	formatsCmd.SetOut(os.Stdout)
}

// formatsCmd lists the downloadable renditions of a video.
var formatsCmd = &cobra.Command{
	Use:   "formats <link>",
	Short: "List the downloadable renditions of a video",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		formats, link, err := newAPI().Formats(context.Background(), args[0], false)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(formats))
			return
		}

		cmd.Println(style.Faint(link))
		cmd.Println(renderFormats(formats))
	},
}

// renderFormats lays the renditions out as a fixed-width table; the verbose
// label column only fits comfortably on wide terminals.
func renderFormats(formats []youtube.Format) string {
	width, _ := util.TerminalSize()
	wide := width >= 100

	rows := make([]string, 0, len(formats))
	for _, f := range formats {
		size := "unknown"
		if f.Filesize > 0 {
			size = fmt.Sprintf("%.1f MiB", float64(f.Filesize)/1024/1024)
		}

		row := fmt.Sprintf("%-8s %-6s %-14s %-12s", f.ID, f.Ext, f.Note, size)
		if wide {
			row += " " + style.Faint(f.Label)
		}
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

// pickFormat asks which rendition to fetch.
func pickFormat(formats []youtube.Format) youtube.Format {
	options := lo.Map(formats, func(f youtube.Format, _ int) string {
		return fmt.Sprintf("%s | %s | %s", f.ID, f.Ext, f.Note)
	})

	var picked int
	handleErr(survey.AskOne(&survey.Select{
		Message:  "Which rendition?",
		Options:  options,
		PageSize: 10,
	}, &picked))

	return formats[picked]
}
