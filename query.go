package podium

import (
	"net/url"
	"strconv"
	"strings"
)

// Query is the deck selection carried in a URL query string:
//
//	?deck=<id>&slide=<n>&section=<label>
//
// slide is 1-based in the URL and 0-based here.
type Query struct {
	Deck    string
	Slide   int // -1 when absent or invalid
	Section string
}

// ParseQuery reads a raw query string. A leading "?" and a full URL are both
// accepted. Malformed input yields an empty query, which opens the picker.
func ParseQuery(raw string) Query {
	q := Query{Slide: -1}
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[i+1:]
	}
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	vals, err := url.ParseQuery(raw)
	if err != nil {
		return q
	}
	q.Deck = strings.TrimSpace(vals.Get("deck"))
	q.Section = strings.TrimSpace(vals.Get("section"))
	if s := vals.Get("slide"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			q.Slide = n - 1
		}
	}
	return q
}

// Encode formats q back into a query string without the leading "?".
func (q Query) Encode() string {
	vals := url.Values{}
	if q.Deck != "" {
		vals.Set("deck", q.Deck)
	}
	if q.Slide >= 0 {
		vals.Set("slide", strconv.Itoa(q.Slide+1))
	}
	if q.Section != "" {
		vals.Set("section", q.Section)
	}
	return vals.Encode()
}
