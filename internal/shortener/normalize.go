package shortener

import (
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes a URL before storage.
// - Requires an absolute URL (scheme and host present)
// - Lowercases the scheme and host
// - Removes default ports (80 for http, 443 for https)
// - Trims the trailing slash
func NormalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrInvalidURL
	}

	if !u.IsAbs() || u.Host == "" {
		return "", ErrInvalidURL
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)

	if strings.HasSuffix(u.Host, ":80") && u.Scheme == "http" {
		u.Host = strings.TrimSuffix(u.Host, ":80")
	} else if strings.HasSuffix(u.Host, ":443") && u.Scheme == "https" {
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}

	if len(u.Path) > 1 && strings.HasSuffix(u.Path, "/") {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}

	return strings.TrimSuffix(u.String(), "/"), nil
}
