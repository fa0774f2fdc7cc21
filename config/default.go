package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/shadowheroku/mu/color"
	"github.com/shadowheroku/mu/constant"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/style"
	"github.com/spf13/viper"
)

// Default indexes every known configuration field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys that may be overridden from the environment.
var EnvExposed []string

// register adds a field to the registry. Keys are unique, a duplicate is a
// programming error.
func register(k string, v any, desc string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}

	Default[k] = Field{Key: k, Value: v, Description: desc}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.DownloadsPath, "downloads", "Directory for fetched media, created at startup.\nFiles are keyed by video id, e.g. dQw4w9WgXcQ.mp3")
	register(key.DownloadsAudioCodec, "mp3", "Audio codec the extractor converts audio downloads to")
	register(key.DownloadsAudioQuality, "192", "Audio bitrate (kbit/s) for the conversion step")
	register(key.DownloadsRetention, "0s", "Remove downloads older than this at startup, e.g. 168h.\nZero keeps everything forever; pruned files are simply re-fetched")
	register(key.CookiesPath, "cookies", "Directory of browser-exported *.txt cookie jars.\nOne is picked at random per extraction.\nMissing or empty directory disables authenticated operations")
	register(key.ExtractorMaxRetries, 3, "Attempts per yt-dlp invocation before giving up")
	register(key.ExtractorRetryDelay, "2s", "Fixed delay between attempts")
	register(key.ExtractorWorkers, 4, "Concurrent yt-dlp subprocess slots")
	register(key.ExtractorMaxFileSizeMB, 250, "Refuse downloads whose reported size exceeds this many megabytes.\nOnly enforced where a size probe is possible (cookies present)")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.SearchSliderLimit, 10, "Page size for indexed search lookups")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.Player, "mpv", "Playback engine to use (e.g., mpv, iina)")
	register(key.SkipSegments, true, "Skip community-flagged segments during playback (SponsorBlock).\nCovers sponsor reads, self promotion and non-music sections")
	register(key.MiniSearchLimit, 20, "Limit of search results to show in mini mode")
	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUISearchPromptString, "> ", "Search prompt string to use")
	register(key.TUIShowURLs, true, "Show URLs under list items")
	register(key.LogsWrite, false, "Also write logs to a session file")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Enable automatic version check")
}

// Field describes one configuration entry: its key, factory default and
// help text.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field as the colored card that config info prints.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable that overrides this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Mu + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON emits both the effective and the default value, typed.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        typeName(f.Value),
	})
}

// typeName spells the dynamic type of a default value, e.g. "int" or "[]string".
func typeName(v any) string {
	return reflect.TypeOf(v).String()
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": typeName,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
