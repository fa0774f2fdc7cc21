// Package cookies selects the browser-exported cookie jars handed to the extractor.
//
// Credentials are plain Netscape-format *.txt files dropped into the configured
// directory. Their absence is not an error: unauthenticated lookups keep
// working and only the credential-gated operations degrade.
package cookies

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/log"
	"github.com/shadowheroku/mu/where"
)

// Provider yields the credential file to use for the next extraction, if any.
type Provider func() mo.Option[string]

var warnOnce sync.Once

// Random returns a Provider that picks one *.txt jar uniformly at random from
// the configured credential directory on every call. A missing or empty
// directory yields None and a single warning for the process lifetime.
func Random() Provider {
	return func() mo.Option[string] {
		dir := where.Cookies()

		entries, err := filesystem.API().ReadDir(dir)
		if err != nil {
			warnMissing(dir)
			return mo.None[string]()
		}

		jars := lo.FilterMap(entries, func(entry os.FileInfo, _ int) (string, bool) {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
				return "", false
			}
			return filepath.Join(dir, entry.Name()), true
		})

		if len(jars) == 0 {
			warnMissing(dir)
			return mo.None[string]()
		}

		return mo.Some(jars[rand.Intn(len(jars))])
	}
}

// Fixed returns a Provider that always yields the given jar.
// Useful for single-jar deployments and tests.
func Fixed(path string) Provider {
	return func() mo.Option[string] {
		return mo.Some(path)
	}
}

// None returns a Provider that never yields credentials.
func None() Provider {
	return func() mo.Option[string] {
		return mo.None[string]()
	}
}

func warnMissing(dir string) {
	warnOnce.Do(func() {
		log.Warnf("no cookie jars in %q, continuing unauthenticated", dir)
	})
}
