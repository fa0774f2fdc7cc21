// Package cmd implements the command-line interface for mu.
package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/inline"
	"github.com/shadowheroku/mu/query"
	"github.com/shadowheroku/mu/youtube"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query to resolve tracks for")
	inlineCmd.Flags().StringP("track", "t", "", "Criteria for selecting a specific track from the search results")
	inlineCmd.Flags().IntP("limit", "l", 0, "Maximum number of search results to resolve")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("include-formats", "F", false, "Probe and include the delivered renditions for selected tracks")
	inlineCmd.Flags().StringP("formats", "f", "", "Criteria for selecting specific renditions from the probed formats")
	inlineCmd.Flags().BoolP("include-stream", "S", false, "Resolve and include direct stream URLs for selected tracks")
	inlineCmd.Flags().BoolP("video", "V", false, "Resolve video streams instead of audio streams")

	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.MarkFlagRequired("query"))

	inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution and data extraction using inline mode.

Track selectors:
  first - first track in the results
  last - last track in the results
  [number] - select a track by index (starting from 0)

Rendition selectors:
  all - every delivered rendition
  audio - audio-only renditions
  video - renditions carrying a video stream
  [format id] - select a rendition by its id
  @[substring]@ - select renditions by id, extension or note substring

When using the json flag the track selector could be omitted. That way, it will select all tracks`,

	Example: "https://github.com/shadowheroku/mu/wiki/Inline-mode",
	PreRun: func(cmd *cobra.Command, args []string) {
		json, _ := cmd.Flags().GetBool("json")

		if !json {
			lo.Must0(cmd.MarkFlagRequired("track"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		q := lo.Must(cmd.Flags().GetString("query"))

		includeFormats := lo.Must(cmd.Flags().GetBool("include-formats"))
		includeStream := lo.Must(cmd.Flags().GetBool("include-stream"))
		if includeFormats || includeStream {
			CheckDependencies()
		}

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			writer = file
		} else {
			writer = os.Stdout
		}

		trackFlag := lo.Must(cmd.Flags().GetString("track"))
		trackPicker := mo.None[inline.TrackPicker]()
		if trackFlag != "" {
			fn, err := inline.ParseTrackPicker(trackFlag)
			handleErr(err)
			trackPicker = mo.Some(fn)
		}

		formatsFlag := lo.Must(cmd.Flags().GetString("formats"))
		formatsFilter := mo.None[inline.FormatsFilter]()
		if formatsFlag != "" {
			fn, err := inline.ParseFormatsFilter(formatsFlag)
			handleErr(err)
			formatsFilter = mo.Some(fn)
		}

		media := youtube.MediaAudio
		if lo.Must(cmd.Flags().GetBool("video")) {
			media = youtube.MediaVideo
		}

		options := &inline.Options{
			Out:           writer,
			API:           newAPI(),
			Json:          lo.Must(cmd.Flags().GetBool("json")),
			Query:         q,
			Limit:         lo.Must(cmd.Flags().GetInt("limit")),
			Media:         media,
			TrackPicker:   trackPicker,
			FormatsFilter: formatsFilter,
			Formats:       includeFormats,
			Stream:        includeStream,
		}

		handleErr(inline.Run(context.Background(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("track", "t", false, "Generate the JSON Schema for bare track objects")
}

// inlineSchemaCmd generates JSON schemas for structured inline mode outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "track", "format", "entry", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("track")):
			schema = reflector.Reflect(&youtube.Track{})
		default:
			schema = reflector.Reflect(&inline.Output{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
