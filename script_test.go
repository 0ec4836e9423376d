package podium

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`
loop: true
steps:
  - {action: key, key: ArrowRight}
  - {action: wait, seconds: 2.5}
  - {action: goto, slide: 3}
  - {action: open, deck: welcome}
`)
	s, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 4 || !s.Loop() || s.Done() {
		t.Errorf("Len = %d Loop = %v Done = %v", s.Len(), s.Loop(), s.Done())
	}
	if s.steps[0].key != ebiten.KeyArrowRight {
		t.Errorf("key = %v", s.steps[0].key)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := map[string]string{
		"empty":          `steps: []`,
		"unknown action": `steps: [{action: jump}]`,
		"unknown key":    `steps: [{action: key, key: Hyper}]`,
		"zero wait":      `steps: [{action: wait}]`,
		"goto zero":      `steps: [{action: goto, slide: 0}]`,
		"open no deck":   `steps: [{action: open}]`,
		"loop no wait":   "loop: true\nsteps: [{action: key, key: Space}]",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadScript([]byte(src)); !errors.Is(err, ErrScript) {
				t.Errorf("err = %v, want ErrScript", err)
			}
		})
	}
	if _, err := LoadScript([]byte("steps: {")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
		ok   bool
	}{
		{"ArrowRight", ebiten.KeyArrowRight, true},
		{"arrowright", ebiten.KeyArrowRight, true},
		{" Space ", ebiten.KeySpace, true},
		{"F", ebiten.KeyF, true},
		{"right", ebiten.KeyArrowRight, true},
		{"ESC", ebiten.KeyEscape, true},
		{"return", ebiten.KeyEnter, true},
		{"pgdn", ebiten.KeyPageDown, true},
		{"Home", ebiten.KeyHome, true},
		{"", 0, false},
		{"Hyper", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKey(tt.name)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("ParseKey(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestScriptDrivesApp(t *testing.T) {
	script, err := NewScript(false,
		ScriptStep{Action: ActionKey, Key: "right"},
		ScriptStep{Action: ActionWait, Seconds: 0.5},
		ScriptStep{Action: ActionGoto, Slide: 3},
		ScriptStep{Action: ActionOpen, Deck: "b"},
	)
	if err != nil {
		t.Fatal(err)
	}
	app := newTestApp(t, AppConfig{Deck: "a", Script: script}, recEntry("a", 4), recEntry("b", 2))
	d := app.Loader().Deck()

	app.Step(frame) // queues the key
	app.Step(frame) // delivers it, starts the wait
	if d.Index() != 1 {
		t.Fatalf("index after key = %d, want 1", d.Index())
	}
	app.Step(frame * 10)
	if d.Index() != 1 || script.Done() {
		t.Fatal("script should still be waiting")
	}
	app.Step(0.5)
	if !script.Done() {
		t.Fatal("goto and open take no time; script should be done")
	}
	if d.Index() != 2 {
		t.Errorf("goto should have moved the first deck to 2, got %d", d.Index())
	}
	if app.Loader().Current() != "b" {
		t.Errorf("current = %q, want b", app.Loader().Current())
	}
}

func TestScriptLoops(t *testing.T) {
	script, err := NewScript(true,
		ScriptStep{Action: ActionKey, Key: "Space"},
		ScriptStep{Action: ActionWait, Seconds: 0.1},
	)
	if err != nil {
		t.Fatal(err)
	}
	app := newTestApp(t, AppConfig{Deck: "a", Script: script}, recEntry("a", 3))
	for range 120 {
		app.Step(frame)
	}
	if script.Done() {
		t.Error("looping script never finishes")
	}
	if app.Loader().Deck().Index() != 2 {
		t.Errorf("index = %d, want last slide", app.Loader().Deck().Index())
	}

	script.Reset()
	if script.cursor != 0 || script.wait != 0 {
		t.Error("Reset should rewind")
	}
}

func TestScriptWaitsForPendingKeys(t *testing.T) {
	kbd := NewKeyboard(&fakeKeys{})
	script, _ := NewScript(false,
		ScriptStep{Action: ActionKey, Key: "Right"},
		ScriptStep{Action: ActionKey, Key: "Right"},
	)
	script.step(frame, kbd, nil)
	script.step(frame, kbd, nil)
	if kbd.Pending() != 1 {
		t.Errorf("Pending = %d; the second key waits for the first to be delivered", kbd.Pending())
	}
	kbd.Process()
	script.step(frame, kbd, nil)
	if kbd.Pending() != 1 || script.Done() {
		t.Errorf("Pending = %d Done = %v", kbd.Pending(), script.Done())
	}
	kbd.Process()
	script.step(frame, kbd, nil)
	if !script.Done() {
		t.Error("script should be done")
	}
}
