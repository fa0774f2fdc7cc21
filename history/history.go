// Package history provides the implementation for tracking and persisting playback history.
package history

import (
	"time"

	"github.com/metafates/gache"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/where"
	"github.com/shadowheroku/mu/youtube"
)

// cacher provides an abstracted, disk-backed registry for playback records.
var cacher = gache.New[map[string]*SavedTrack](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of playback records from the persistent store.
func Get() (map[string]*SavedTrack, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedTrack), nil
	}
	return cached, nil
}

// Save persists one playback of a track, accumulating its play count.
func Save(track youtube.Track) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedTrack(track)
	if existing, exists := saved[record.encode()]; exists {
		record.Plays = existing.Plays
	}
	record.Plays++
	record.LastPlayedAt = time.Now()

	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a playback record from the registry.
func Remove(track *SavedTrack) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, track.encode())
	return cacher.Set(saved)
}
