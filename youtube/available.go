package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shadowheroku/mu/constant"
	"github.com/shadowheroku/mu/network"
	"github.com/shadowheroku/mu/util"
)

const oembedBase = "https://www.youtube.com/oembed?url="

// Available reports whether the media behind a link is publicly reachable.
// It asks the oEmbed endpoint, which answers without credentials and without
// spawning an extraction.
//
// A definitive upstream "no" (bad request, unauthorized, not found) yields
// false with a nil error; transport failures and unexpected statuses are
// reported as errors so callers can tell refusal from outage.
func (a *API) Available(ctx context.Context, link string, videoID bool) (bool, error) {
	link = stripParams(resolve(link, videoID))

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, oembedBase+url.QueryEscape(link), nil)
	if err != nil {
		return false, err
	}
	request.Header.Set("User-Agent", constant.UserAgent)

	response, err := network.Client.Do(request)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	defer util.Ignore(response.Body.Close)

	switch response.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: oembed status %d", ErrUpstream, response.StatusCode)
	}
}
