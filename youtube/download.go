package youtube

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/samber/mo"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/log"
	"github.com/shadowheroku/mu/util"
	"github.com/shadowheroku/mu/where"
	"github.com/spf13/viper"
)

// MediaKind selects the extraction profile of a download or stream probe.
type MediaKind string

const (
	MediaAudio MediaKind = "audio"
	MediaVideo MediaKind = "video"
)

// format is the selection expression for the kind.
func (k MediaKind) format() string {
	if k == MediaVideo {
		return videoFormat
	}
	return audioFormat
}

// cacheExt is the extension the id-keyed existence cache is probed with.
func (k MediaKind) cacheExt() string {
	if k == MediaVideo {
		return "mp4"
	}
	return viper.GetString(key.DownloadsAudioCodec)
}

// DownloadOptions selects the variant of a unified download.
type DownloadOptions struct {
	// Video fetches the watchable rendition instead of audio, preferring a
	// direct stream URL when the upstream offers one.
	Video bool

	// SongAudio and SongVideo are the hosting bot's explicit-format song
	// variants; both expect FormatID and Title to be set.
	SongAudio bool
	SongVideo bool

	// FormatID replaces the format selection expression when Title is also set.
	FormatID string

	// Title keys the fetched file by sanitized title instead of video id.
	Title string

	// ID marks the link argument as a bare video id.
	ID bool

	// Progress, when set, receives transfer updates while the fetch runs.
	// Cache hits and stream resolutions never report progress.
	Progress ProgressFunc
}

// Download fetches media, or resolves a direct stream URL for the plain video
// variant. The bool reports whether the returned string is a local file path
// rather than a URL.
func (a *API) Download(ctx context.Context, link string, opts DownloadOptions) (string, bool, error) {
	link = resolve(link, opts.ID)

	switch {
	case opts.SongVideo || opts.SongAudio:
		path, err := a.fetchMedia(ctx, link, MediaAudio, opts)
		if err != nil {
			return "", false, err
		}
		return path, true, nil

	case opts.Video:
		if url, err := a.StreamURL(ctx, link, MediaVideo); err == nil {
			return url, false, nil
		}

		path, err := a.fetchMedia(ctx, link, MediaVideo, opts)
		if err != nil {
			return "", false, err
		}
		return path, true, nil

	default:
		path, err := a.fetchMedia(ctx, link, MediaAudio, opts)
		if err != nil {
			return "", false, err
		}
		return path, true, nil
	}
}

// StreamURL probes for a direct stream URL without downloading anything.
func (a *API) StreamURL(ctx context.Context, link string, kind MediaKind) (string, error) {
	info, err := a.extractor.Probe(ctx, link, ExtractOptions{
		Format:  kind.format(),
		Cookies: a.jars(),
	})
	if err != nil {
		log.Errorf("stream %q: %s", link, err)
		return "", err
	}
	if info.URL == "" {
		// Merged renditions report no single progressive URL.
		return "", fmt.Errorf("%w: no direct stream", ErrNotFound)
	}
	return info.URL, nil
}

// fetchMedia is the canonical download flow: an id-keyed cache probe, a
// subprocess fetch on a miss, then a re-derivation of the final path.
func (a *API) fetchMedia(ctx context.Context, link string, kind MediaKind, request DownloadOptions) (string, error) {
	id := NormalizeID(link)
	dir := where.Downloads()

	// The id-keyed probe also covers override downloads: a canonical cached
	// file satisfies the request without a subprocess.
	cached := filepath.Join(dir, id+"."+kind.cacheExt())
	if exists, _ := filesystem.API().Exists(cached); exists {
		log.Infof("using cached file %q", cached)
		return cached, nil
	}

	opts := ExtractOptions{
		Format:   kind.format(),
		Output:   filepath.Join(dir, id+".%(ext)s"),
		Cookies:  a.jars(),
		Progress: request.Progress,
	}
	if kind == MediaAudio {
		opts.Audio = mo.Some(AudioPost{
			Codec:   viper.GetString(key.DownloadsAudioCodec),
			Quality: viper.GetString(key.DownloadsAudioQuality),
		})
	}

	stem := id
	if request.FormatID != "" && request.Title != "" {
		stem = util.SanitizeFilename(request.Title)
		opts.Format = request.FormatID
		opts.Output = filepath.Join(dir, stem+".%(ext)s")
	}

	info, err := a.extractor.Fetch(ctx, link, opts)
	if err != nil {
		log.Errorf("download %s %q: %s", kind, link, err)
		return "", err
	}

	// The conversion step rewrites the container, so audio paths are keyed by
	// the target codec rather than the reported source extension.
	ext := info.Ext
	if kind == MediaAudio {
		ext = viper.GetString(key.DownloadsAudioCodec)
	}

	path := filepath.Join(dir, stem+"."+ext)
	if exists, _ := filesystem.API().Exists(path); !exists {
		return "", fmt.Errorf("%w: fetched file missing at %q", ErrUpstream, path)
	}
	return path, nil
}
