package youtube

import (
	"context"
	"time"

	"github.com/samber/mo"
)

// Format selection expressions handed to the extraction tool.
const (
	audioFormat = "bestaudio/best"
	videoFormat = "bestvideo[height<=720]+bestaudio"
)

// AudioPost describes the audio conversion applied after a download.
type AudioPost struct {
	Codec   string
	Quality string
}

// ProgressFunc receives coarse transfer updates while a fetch is running.
// total is zero when the upstream does not report a size.
type ProgressFunc func(downloaded, total int64, eta time.Duration)

// ExtractOptions is the closed set of knobs a single invocation can vary.
// Quiet mode, warning suppression, geo bypass and certificate-check bypass
// are applied to every run and are not caller-configurable.
type ExtractOptions struct {
	// Format is the format selection expression. Empty means the tool default.
	Format string

	// Output is the output path template, e.g. "downloads/dQw4w9WgXcQ.%(ext)s".
	// Empty means no download target, which only makes sense for probes.
	Output string

	// Cookies is the credential jar to authenticate with, if any.
	Cookies mo.Option[string]

	// Audio requests a post-download audio conversion.
	Audio mo.Option[AudioPost]

	// Flat asks for a non-recursive playlist listing.
	Flat bool

	// Limit caps the number of playlist entries resolved in a Flat probe.
	Limit int

	// Progress, when set, is called with transfer updates during a fetch.
	// Probes never report progress.
	Progress ProgressFunc
}

// FormatInfo mirrors one entry of the extraction tool's format list.
type FormatInfo struct {
	FormatID   string `json:"format_id"`
	Ext        string `json:"ext"`
	Filesize   int64  `json:"filesize"`
	Format     string `json:"format"`
	FormatNote string `json:"format_note"`
	VideoCodec string `json:"vcodec"`
	AudioCodec string `json:"acodec"`
	Height     int    `json:"height"`
	Width      int    `json:"width"`
}

// MediaInfo is the decoded metadata dump of one extraction.
type MediaInfo struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Ext            string       `json:"ext"`
	URL            string       `json:"url"`
	Duration       float64      `json:"duration"`
	Thumbnail      string       `json:"thumbnail"`
	Filesize       int64        `json:"filesize"`
	FilesizeApprox int64        `json:"filesize_approx"`
	Formats        []FormatInfo `json:"formats"`
	Entries        []MediaInfo  `json:"entries"`
}

// Extractor abstracts the media extraction tool behind the adapter.
//
// Probe resolves metadata without touching the disk; Fetch performs the
// download described by the options and reports the resulting metadata.
// Both honor caller cancellation and must be safe for concurrent use.
type Extractor interface {
	Probe(ctx context.Context, link string, opts ExtractOptions) (*MediaInfo, error)
	Fetch(ctx context.Context, link string, opts ExtractOptions) (*MediaInfo, error)
}
