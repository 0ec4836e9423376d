package podium

// PlaybackEventType identifies what a PlaybackEvent reports.
type PlaybackEventType uint8

const (
	EventDeckOpened   PlaybackEventType = iota // a deck was mounted; To is the start slide
	EventSlideChanged                          // the active slide moved From -> To
	EventDeckClosed                            // the deck was unmounted; From is the last slide
)

// String returns a short name for the event type.
func (t PlaybackEventType) String() string {
	switch t {
	case EventDeckOpened:
		return "opened"
	case EventSlideChanged:
		return "changed"
	case EventDeckClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// PlaybackEvent describes one change in what the loader is playing.
type PlaybackEvent struct {
	Type   PlaybackEventType
	Deck   string
	From   int // -1 for EventDeckOpened
	To     int // -1 for EventDeckClosed
	Slides int
}

// EventSink is the interface for optional ECS integration. The loader emits
// every playback event to it, in order, on the update goroutine.
type EventSink interface {
	EmitEvent(event PlaybackEvent)
}
