// Package network provides the shared HTTP client for the adapter's own API calls.
//
// Media extraction goes through the yt-dlp subprocess and never touches this
// client; it only serves short round trips such as availability probes,
// SponsorBlock segment lookups and release checks.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application. The
// workload is a handful of small JSON calls per session, so the pool stays
// modest and the deadline short enough that a stalled probe cannot hold up
// playback for long.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: newTransport(),
}

// newTransport initializes an http.Transport sized for occasional API traffic.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 90 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	return t
}
