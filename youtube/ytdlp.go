package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/lrstanley/go-ytdlp"
	"github.com/shadowheroku/mu/key"
	"github.com/shadowheroku/mu/log"
	"github.com/spf13/viper"
	"golang.org/x/sync/semaphore"
)

// ytdlpExtractor shells out to the yt-dlp binary. A weighted semaphore keeps
// the number of live subprocesses at the configured worker count, so a burst
// of chat commands queues instead of forking without bound.
type ytdlpExtractor struct {
	pool *semaphore.Weighted
}

// NewExtractor returns the yt-dlp backed Extractor with the configured
// number of subprocess slots.
func NewExtractor() Extractor {
	workers := viper.GetInt(key.ExtractorWorkers)
	if workers < 1 {
		workers = 1
	}
	return &ytdlpExtractor{pool: semaphore.NewWeighted(int64(workers))}
}

// Probe resolves metadata without downloading.
func (e *ytdlpExtractor) Probe(ctx context.Context, link string, opts ExtractOptions) (*MediaInfo, error) {
	cmd := e.command(opts).DumpSingleJSON()
	return e.run(ctx, cmd, link)
}

// Fetch downloads media according to opts and reports the resulting metadata.
func (e *ytdlpExtractor) Fetch(ctx context.Context, link string, opts ExtractOptions) (*MediaInfo, error) {
	cmd := e.command(opts).PrintJSON()
	return e.run(ctx, cmd, link)
}

// command translates the option struct into the fixed invocation profile.
func (e *ytdlpExtractor) command(opts ExtractOptions) *ytdlp.Command {
	cmd := ytdlp.New().
		Quiet().
		NoWarnings().
		GeoBypass().
		NoCheckCertificates().
		IgnoreConfig()

	if opts.Format != "" {
		cmd = cmd.Format(opts.Format)
	}
	if opts.Output != "" {
		cmd = cmd.Output(opts.Output)
	}
	if jar, ok := opts.Cookies.Get(); ok {
		cmd = cmd.Cookies(jar)
	}
	if post, ok := opts.Audio.Get(); ok {
		cmd = cmd.ExtractAudio().AudioFormat(post.Codec).AudioQuality(post.Quality)
	}
	if opts.Flat {
		cmd = cmd.FlatPlaylist()
		if opts.Limit > 0 {
			cmd = cmd.PlaylistItems(fmt.Sprintf("1-%d", opts.Limit))
		}
	}
	if opts.Progress != nil {
		cmd.ProgressFunc(500*time.Millisecond, func(update ytdlp.ProgressUpdate) {
			opts.Progress(update.DownloadedBytes, update.TotalBytes, update.ETA())
		})
	}

	return cmd
}

// run executes the prepared command under the worker semaphore, retrying
// transient failures with the configured fixed delay.
func (e *ytdlpExtractor) run(ctx context.Context, cmd *ytdlp.Command, link string) (*MediaInfo, error) {
	if err := e.pool.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer e.pool.Release(1)

	tries := viper.GetInt(key.ExtractorMaxRetries)
	if tries < 1 {
		tries = 1
	}
	delay := viper.GetDuration(key.ExtractorRetryDelay)

	attempt := 0
	operation := func() (*ytdlp.Result, error) {
		attempt++
		result, err := cmd.Run(ctx, link)
		if err != nil {
			err = classify(result, err)
			log.Debugf("extraction attempt %d for %q: %s", attempt, link, err)
			return nil, err
		}
		return result, nil
	}

	result, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(delay)),
		backoff.WithMaxTries(uint(tries)),
	)
	if err != nil {
		return nil, err
	}

	return decodeInfo(result.Stdout)
}

// classify maps a failed run onto the adapter's failure reasons. Dead media
// and credential walls do not heal with time, so they short-circuit the retry
// loop; everything else is assumed transient.
func classify(result *ytdlp.Result, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return backoff.Permanent(err)
	}

	detail := err.Error()
	if result != nil && result.Stderr != "" {
		detail = result.Stderr
	}
	lower := strings.ToLower(detail)

	switch {
	case strings.Contains(lower, "video unavailable"),
		strings.Contains(lower, "private video"),
		strings.Contains(lower, "not available"),
		strings.Contains(lower, "does not exist"):
		return backoff.Permanent(fmt.Errorf("%w: %s", ErrNotFound, firstLine(detail)))

	case strings.Contains(lower, "sign in to confirm"),
		strings.Contains(lower, "login required"),
		strings.Contains(lower, "cookies"):
		return backoff.Permanent(fmt.Errorf("%w: %s", ErrAuthMissing, firstLine(detail)))

	default:
		return fmt.Errorf("%w: %s", ErrUpstream, firstLine(detail))
	}
}

// decodeInfo parses the first JSON document of the tool's stdout. Progress
// noise after the document is tolerated.
func decodeInfo(stdout string) (*MediaInfo, error) {
	var info MediaInfo
	if err := json.NewDecoder(strings.NewReader(stdout)).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: undecodable media info: %s", ErrUpstream, err)
	}
	return &info, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
