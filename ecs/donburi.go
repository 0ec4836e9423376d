package ecs

import (
	"github.com/phanxgames/podium"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PlaybackEventType is the Donburi event type for podium playback events.
var PlaybackEventType = events.NewEventType[podium.PlaybackEvent]()

// NowPlaying is a component holding the loader's current deck and slide.
// The sink keeps it on a single entity created with the sink.
type NowPlaying struct {
	Deck   string
	Slide  int
	Slides int
}

// NowPlayingComponent is the Donburi component type for NowPlaying.
var NowPlayingComponent = donburi.NewComponentType[NowPlaying]()

type donburiSink struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to PlaybackEventType and can be consumed with events.Subscribe
// and ProcessEvents. The NowPlaying entity is updated immediately.
func NewDonburiSink(world donburi.World) podium.EventSink {
	s := &donburiSink{world: world}
	s.entity = world.Create(NowPlayingComponent)
	NowPlayingComponent.SetValue(world.Entry(s.entity), NowPlaying{Slide: -1})
	return s
}

// NowPlayingEntry returns the entry holding the NowPlaying component, or nil
// when sink was not created by NewDonburiSink.
func NowPlayingEntry(world donburi.World, sink podium.EventSink) *donburi.Entry {
	s, ok := sink.(*donburiSink)
	if !ok || !world.Valid(s.entity) {
		return nil
	}
	return world.Entry(s.entity)
}

func (s *donburiSink) EmitEvent(event podium.PlaybackEvent) {
	if s.world.Valid(s.entity) {
		np := NowPlaying{Deck: event.Deck, Slide: event.To, Slides: event.Slides}
		if event.Type == podium.EventDeckClosed {
			np = NowPlaying{Slide: -1}
		}
		NowPlayingComponent.SetValue(s.world.Entry(s.entity), np)
	}
	PlaybackEventType.Publish(s.world, event)
}
