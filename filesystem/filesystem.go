// Package filesystem routes every disk touch through a swappable afero backend.
//
// Cookie jar scans, download probes, cache and history files, config and logs
// all go through API(), so tests can run against an in-memory filesystem
// without stubbing call sites.
package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

var active = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return active
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	active = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing and CI environments.
func SetMemMapFs() {
	active = afero.Afero{Fs: afero.NewMemMapFs()}
}

// GacheFs satisfies gache.FileSystem on top of the active backend. The
// playback history, the query ranking store and the release check cache all
// persist through gache and must honor the backend swap.
type GacheFs struct{}

// OpenFile opens name through the active backend.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

// MkdirAll creates path and its parents through the active backend.
func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
