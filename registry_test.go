package podium

import (
	"errors"
	"testing"
)

func recEntry(id string, n int) Entry {
	return Entry{
		ID:          id,
		Description: "deck " + id,
		New: func() (*Presentation, error) {
			slides, _ := recSlides(n)
			return &Presentation{Title: id, Slides: slides, Transition: TransitionNone}, nil
		},
	}
}

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry(recEntry("zeta", 1), recEntry("alpha", 2))
	if err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len = %d", reg.Len())
	}
	e, ok := reg.Lookup("zeta")
	if !ok || e.Title != "zeta" {
		t.Errorf("Lookup(zeta) = %+v, %v; title should default to the id", e, ok)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Error("Lookup of an unknown id should fail")
	}
	if got := reg.Entries(); got[0].ID != "zeta" || got[1].ID != "alpha" {
		t.Error("Entries should keep registration order")
	}
	if ids := reg.IDs(); ids[0] != "alpha" || ids[1] != "zeta" {
		t.Errorf("IDs = %v, want sorted", ids)
	}
}

func TestRegistryEntriesIsCopy(t *testing.T) {
	reg := MustRegistry(recEntry("a", 1))
	reg.Entries()[0].ID = "changed"
	if _, ok := reg.Lookup("a"); !ok {
		t.Error("mutating Entries() must not affect the registry")
	}
	if reg.Entries()[0].ID != "a" {
		t.Error("registry entry was mutated")
	}
}

func TestNewRegistryErrors(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{"empty id", []Entry{recEntry("", 1)}, ErrEmptyID},
		{"duplicate", []Entry{recEntry("a", 1), recEntry("a", 2)}, ErrDuplicateID},
		{"no constructor", []Entry{{ID: "x"}}, ErrNoConstructor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRegistry(tt.entries...); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustRegistryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustRegistry(recEntry("a", 1), recEntry("a", 1))
}

func TestEmptyRegistry(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil || reg.Len() != 0 {
		t.Fatalf("empty registry: %v", err)
	}
}

func TestPresentationDispose(t *testing.T) {
	slides, recs := recSlides(2)
	p := &Presentation{Slides: append(slides, nil)}
	p.Dispose()
	for i, r := range recs {
		if !r.node.IsDisposed() {
			t.Errorf("slide %d node not disposed", i)
		}
	}
}
