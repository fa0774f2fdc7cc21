// Package youtube adapts chat-facing media commands to the yt-dlp extraction
// tool and the public search index.
package youtube

import "errors"

// Failure reasons reported by adapter operations. Lookup callers are expected
// to degrade softly; these let them tell a dead link from missing credentials
// or a transient upstream problem.
var (
	// ErrNotFound means the media does not exist, is private, or a search
	// produced no usable hit.
	ErrNotFound = errors.New("media not found")

	// ErrAuthMissing means the operation needs a cookie jar and none was
	// available.
	ErrAuthMissing = errors.New("cookies required")

	// ErrUpstream covers transient extraction and search failures.
	ErrUpstream = errors.New("upstream failure")
)
