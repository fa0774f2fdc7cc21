// Package version tracks the running build against the published releases:
// update lookup, semver comparison and the post-command update notice.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/shadowheroku/mu/constant"
	"github.com/shadowheroku/mu/filesystem"
	"github.com/shadowheroku/mu/network"
	"github.com/shadowheroku/mu/util"
	"github.com/shadowheroku/mu/where"
)

const latestReleaseURL = "https://api.github.com/repos/shadowheroku/mu/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest published version, without the v prefix.
// Lookups go through a two-day on-disk cache.
func Latest() (string, error) {
	cached, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	version, err := fetchLatest()
	if err != nil {
		return "", err
	}

	_ = versionCacher.Set(version)
	return version, nil
}

// fetchLatest asks the GitHub releases API for the newest tag.
func fetchLatest() (string, error) {
	request, err := http.NewRequest(http.MethodGet, latestReleaseURL, nil)
	if err != nil {
		return "", err
	}

	request.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(request)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup returned %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("release has no tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
