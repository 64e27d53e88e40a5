// Package podlink routes inbound navigation requests (deep links) from
// notifications, widgets and web links to in-app destinations.
package podlink

import (
	"net/url"
	"strings"
)

// General errors.
const (
	ErrInvalidURL = Error("invalid url")
)

// DefaultWebBaseHost is the canonical website host used for web links.
const DefaultWebBaseHost = "pocketcasts.com"

// ParseURI parses an optional request URI. A blank string returns a nil URL.
func ParseURI(s string) (*url.URL, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, ErrInvalidURL
	}
	return u, nil
}
