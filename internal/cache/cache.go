// Package cache provides filesystem-based caching for YouTube lookup results.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/where"
	"github.com/spf13/afero"
)

// TTL bounds how long a cached lookup stays valid. Search rankings and
// video metadata drift quickly, so entries expire after a day.
const TTL = 24 * time.Hour

// GenerateKey generates a deterministic SHA-256 hash from a query and lookup
// scope pair for use as a cache identifier.
func GenerateKey(query, scope string) string {
	sanitized := strings.ToLower(strings.ReplaceAll(query, " ", "")) + scope
	hash := sha256.Sum256([]byte(sanitized))
	return hex.EncodeToString(hash[:])
}

// Read attempts to retrieve and deserialize a cached object if it exists and
// has not exceeded its TTL.
func Read(key string, target interface{}) bool {
	path := filepath.Join(where.Results(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	f, err := filesystem.API().Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(target) == nil
}

// Write persists a serializable object to the cache using an atomic file swap
// so that readers never observe partial entries.
func Write(key string, data interface{}) error {
	path := filepath.Join(where.Results(), key)
	tmpPath := path + ".tmp"

	f, err := filesystem.API().Create(tmpPath)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(f).Encode(data); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return filesystem.API().Rename(tmpPath, path)
}

// CollectGarbage prunes expired cache entries. Meant to run in the background
// at startup.
func CollectGarbage() {
	_ = afero.Walk(filesystem.API(), where.Results(), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > TTL {
			_ = filesystem.API().Remove(path)
		}
		return nil
	})
}
