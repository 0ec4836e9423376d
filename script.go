package podium

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ErrScript wraps every playback-script validation error.
var ErrScript = errors.New("podium: invalid script")

// Script step actions.
const (
	ActionKey  = "key"
	ActionWait = "wait"
	ActionGoto = "goto"
	ActionOpen = "open"
)

// ScriptStep is one action in a playback script.
type ScriptStep struct {
	Action  string  `yaml:"action"`
	Key     string  `yaml:"key,omitempty"`
	Seconds float64 `yaml:"seconds,omitempty"`
	Slide   int     `yaml:"slide,omitempty"` // 1-based
	Deck    string  `yaml:"deck,omitempty"`

	key ebiten.Key
}

type scriptFile struct {
	Loop  bool         `yaml:"loop"`
	Steps []ScriptStep `yaml:"steps"`
}

// Script replays key presses and navigation across frames. It drives kiosk
// autoplay and lets tests exercise the deck through the same key path as a
// user. Keys go through Keyboard.InjectKey; the script waits for each
// injected press to be delivered before moving on.
type Script struct {
	steps  []ScriptStep
	loop   bool
	cursor int
	wait   float64
	done   bool
}

// LoadScript parses a YAML playback script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return NewScript(f.Loop, f.Steps...)
}

// NewScript validates steps and returns a script ready to run.
func NewScript(loop bool, steps ...ScriptStep) (*Script, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrScript)
	}
	out := make([]ScriptStep, len(steps))
	for i, st := range steps {
		st.Action = strings.ToLower(strings.TrimSpace(st.Action))
		switch st.Action {
		case ActionKey:
			k, ok := ParseKey(st.Key)
			if !ok {
				return nil, fmt.Errorf("%w: step %d: unknown key %q", ErrScript, i+1, st.Key)
			}
			st.key = k
		case ActionWait:
			if st.Seconds <= 0 {
				return nil, fmt.Errorf("%w: step %d: wait needs seconds > 0", ErrScript, i+1)
			}
		case ActionGoto:
			if st.Slide < 1 {
				return nil, fmt.Errorf("%w: step %d: goto needs slide >= 1", ErrScript, i+1)
			}
		case ActionOpen:
			if st.Deck == "" {
				return nil, fmt.Errorf("%w: step %d: open needs a deck", ErrScript, i+1)
			}
		default:
			return nil, fmt.Errorf("%w: step %d: unknown action %q", ErrScript, i+1, st.Action)
		}
		out[i] = st
	}
	if loop && !hasWait(out) {
		return nil, fmt.Errorf("%w: a looping script needs at least one wait", ErrScript)
	}
	return &Script{steps: out, loop: loop}, nil
}

func hasWait(steps []ScriptStep) bool {
	for _, st := range steps {
		if st.Action == ActionWait {
			return true
		}
	}
	return false
}

// Done reports whether a non-looping script has run every step.
func (s *Script) Done() bool { return s.done }

// Len returns the number of steps.
func (s *Script) Len() int { return len(s.steps) }

// Loop reports whether the script restarts after its last step.
func (s *Script) Loop() bool { return s.loop }

// Reset rewinds to the first step.
func (s *Script) Reset() {
	s.cursor, s.wait, s.done = 0, 0, false
}

// step advances the script by one frame of dt seconds. Steps that take no
// time run back to back; a wait or a pending key press ends the frame.
func (s *Script) step(dt float64, kbd *Keyboard, l *Loader) {
	if s.done {
		return
	}
	if kbd != nil && kbd.Pending() > 0 {
		return
	}
	if s.wait > 0 {
		s.wait -= dt
		if s.wait > 0 {
			return
		}
		s.wait = 0
	}
	for {
		if s.cursor >= len(s.steps) {
			if !s.loop {
				s.done = true
				return
			}
			s.cursor = 0
		}
		st := s.steps[s.cursor]
		s.cursor++

		switch st.Action {
		case ActionKey:
			if kbd != nil {
				kbd.InjectKey(st.key)
			}
			return
		case ActionWait:
			s.wait = st.Seconds
			return
		case ActionGoto:
			if l != nil && l.Deck() != nil {
				l.Deck().GoTo(st.Slide - 1)
			}
		case ActionOpen:
			if l != nil {
				l.Open(st.Deck)
			}
		}
	}
}

var keyNames map[string]ebiten.Key

// keyAliases covers the short names people write in scripts.
var keyAliases = map[string]ebiten.Key{
	"right":  ebiten.KeyArrowRight,
	"left":   ebiten.KeyArrowLeft,
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"esc":    ebiten.KeyEscape,
	"return": ebiten.KeyEnter,
	"pgdn":   ebiten.KeyPageDown,
	"pgup":   ebiten.KeyPageUp,
}

// ParseKey resolves an Ebitengine key name ("ArrowRight", "Space", "F")
// case-insensitively. Short aliases like "right" and "esc" are accepted.
func ParseKey(name string) (ebiten.Key, bool) {
	if keyNames == nil {
		keyNames = make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
		for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
			keyNames[strings.ToLower(k.String())] = k
		}
	}
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return 0, false
	}
	if k, ok := keyAliases[n]; ok {
		return k, true
	}
	k, ok := keyNames[n]
	return k, ok
}
