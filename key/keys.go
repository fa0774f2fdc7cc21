// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 23

// Download Storage - these keys govern where fetched media lands and how audio is post-processed.
const (
	DownloadsPath         = "downloads.path"
	DownloadsAudioCodec   = "downloads.audio_codec"
	DownloadsAudioQuality = "downloads.audio_quality"
	DownloadsRetention    = "downloads.retention"
)

// Credential Material - these keys locate the browser-exported cookie jars handed to the extractor.
const (
	CookiesPath = "cookies.path"
)

// Extraction Runtime - these keys bound the yt-dlp subprocess behavior.
const (
	ExtractorMaxRetries    = "extractor.max_retries"
	ExtractorRetryDelay    = "extractor.retry_delay"
	ExtractorWorkers       = "extractor.workers"
	ExtractorMaxFileSizeMB = "extractor.max_file_size_mb"
)

// Search Interaction - these keys define the parameters for search discovery.
const (
	SearchSliderLimit          = "search.slider_limit"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Media Playback - these keys select and configure the external playback engine.
const (
	Player       = "player.default"
	SkipSegments = "player.skip_segments"
)

// Minimalist (Mini) Mode - these keys configure the interactive search-and-play loop.
const (
	MiniSearchLimit = "mini.search_limit"
)

// Terminal User Interface (TUI) - these keys define the full-screen browser's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the command-line application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
