package podium

import "testing"

func TestParseQuery(t *testing.T) {
	tests := []struct {
		raw  string
		want Query
	}{
		{"", Query{Slide: -1}},
		{"?deck=welcome", Query{Deck: "welcome", Slide: -1}},
		{"deck=welcome&slide=3", Query{Deck: "welcome", Slide: 2}},
		{"https://example.com/play?deck=talk&section=Demo#top", Query{Deck: "talk", Slide: -1, Section: "Demo"}},
		{"?deck=talk&slide=0", Query{Deck: "talk", Slide: -1}},
		{"?deck=talk&slide=abc", Query{Deck: "talk", Slide: -1}},
		{"?deck=%20spaced%20&section=Part+2", Query{Deck: "spaced", Slide: -1, Section: "Part 2"}},
		{"?deck=does-not-exist", Query{Deck: "does-not-exist", Slide: -1}},
		{"?deck=%zz", Query{Slide: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseQuery(tt.raw); got != tt.want {
				t.Errorf("ParseQuery(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestQueryEncode(t *testing.T) {
	q := Query{Deck: "talk", Slide: 4, Section: "Part 2"}
	got := q.Encode()
	if got != "deck=talk&section=Part+2&slide=5" {
		t.Errorf("Encode = %q", got)
	}
	if back := ParseQuery(got); back != q {
		t.Errorf("ParseQuery(Encode) = %+v, want %+v", back, q)
	}
	if (Query{Slide: -1}).Encode() != "" {
		t.Error("empty query should encode to nothing")
	}
}
