package podlink

import (
	"bytes"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
)

// Request errors.
const (
	ErrRequestRequired = Error("request required")
	ErrActionRequired  = Error("action required")
	ErrInvalidExtra    = Error("invalid extra")
)

// Request actions.
const (
	ActionOpenDownloads           = "OPEN_DOWNLOADS"
	ActionOpenAddBookmark         = "OPEN_ADD_BOOKMARK"
	ActionOpenChangeBookmarkTitle = "OPEN_CHANGE_BOOKMARK_TITLE"
	ActionOpenBookmark            = "OPEN_BOOKMARK"
	ActionOpenDeleteBookmark      = "OPEN_DELETE_BOOKMARK"
	ActionOpenPodcast             = "OPEN_PODCAST"
	ActionOpenEpisode             = "OPEN_EPISODE"
	ActionView                    = "VIEW"
)

// Request extra keys.
const (
	ExtraBookmarkUUID = "bookmarkUuid"
	ExtraPodcastUUID  = "podcastUuid"
	ExtraEpisodeUUID  = "episodeUuid"
	ExtraSourceView   = "sourceView"
	ExtraPage         = "page"
	ExtraFilterID     = "filterId"
)

// Request represents an inbound navigation request.
type Request struct {
	Action string
	Extras Extras
	URI    *url.URL
}

// NewRequest returns a request for action with no extras.
func NewRequest(action string) *Request {
	return &Request{Action: action, Extras: make(Extras)}
}

// Host returns the host of the request URI, if any.
func (r *Request) Host() string {
	if r.URI == nil {
		return ""
	}
	return r.URI.Hostname()
}

// MarshalJSON encodes the request with the URI as a string.
func (r *Request) MarshalJSON() ([]byte, error) {
	var v requestJSON
	v.Action = r.Action
	v.Extras = r.Extras
	if r.URI != nil {
		v.URI = r.URI.String()
	}
	return json.Marshal(&v)
}

// UnmarshalJSON decodes a request. A malformed URI returns ErrInvalidURL.
func (r *Request) UnmarshalJSON(data []byte) error {
	var v requestJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	u, err := ParseURI(v.URI)
	if err != nil {
		return err
	}

	*r = Request{Action: v.Action, Extras: v.Extras, URI: u}
	if r.Extras == nil {
		r.Extras = make(Extras)
	}
	return nil
}

type requestJSON struct {
	Action string `json:"action"`
	Extras Extras `json:"extras,omitempty"`
	URI    string `json:"uri,omitempty"`
}

// Extra is a single named request parameter holding either a string or an
// integer value.
type Extra struct {
	s      string
	n      int64
	isLong bool
}

// StringExtra returns a string-valued extra.
func StringExtra(s string) Extra { return Extra{s: s} }

// LongExtra returns an integer-valued extra.
func LongExtra(n int64) Extra { return Extra{n: n, isLong: true} }

// IsLong returns true if the extra holds an integer.
func (e Extra) IsLong() bool { return e.isLong }

// Int64 returns the integer value. Returns zero for string extras.
func (e Extra) Int64() int64 { return e.n }

// String returns the value formatted as a string.
func (e Extra) String() string {
	if e.isLong {
		return strconv.FormatInt(e.n, 10)
	}
	return e.s
}

// MarshalJSON encodes integers as JSON numbers and strings as JSON strings.
func (e Extra) MarshalJSON() ([]byte, error) {
	if e.isLong {
		return []byte(strconv.FormatInt(e.n, 10)), nil
	}
	return json.Marshal(e.s)
}

// UnmarshalJSON accepts a JSON string or an integral JSON number.
func (e *Extra) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = StringExtra(s)
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return ErrInvalidExtra
	}
	*e = LongExtra(n)
	return nil
}

// Extras is a set of named request parameters.
type Extras map[string]Extra

// String returns a string-valued extra. Integer-valued extras are reported as
// absent, matching how the platform reads string extras.
func (m Extras) String(key string) (string, bool) {
	e, ok := m[key]
	if !ok || e.isLong {
		return "", false
	}
	return e.s, true
}

// Long returns an integer extra. String values are parsed; absent or
// unparseable values return def.
func (m Extras) Long(key string, def int64) int64 {
	e, ok := m[key]
	if !ok {
		return def
	} else if e.isLong {
		return e.n
	}

	n, err := strconv.ParseInt(e.s, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// SetString sets a string-valued extra.
func (m Extras) SetString(key, value string) { m[key] = StringExtra(value) }

// SetLong sets an integer-valued extra.
func (m Extras) SetLong(key string, value int64) { m[key] = LongExtra(value) }

// Keys returns the extra names in sorted order.
func (m Extras) Keys() []string {
	a := make([]string, 0, len(m))
	for k := range m {
		a = append(a, k)
	}
	sort.Strings(a)
	return a
}

// UnmarshalJSON decodes extras, skipping null values.
func (m *Extras) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	other := make(Extras, len(raw))
	for k, v := range raw {
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}

		var e Extra
		if err := e.UnmarshalJSON(v); err != nil {
			return err
		}
		other[k] = e
	}
	*m = other
	return nil
}
