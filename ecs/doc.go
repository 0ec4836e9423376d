// Package ecs provides ECS adapters for podium's playback events.
//
// The primary adapter is [NewDonburiSink], which bridges podium playback
// events (deck opened, slide changed, deck closed) into a [Donburi] world as
// typed events. Subscribe to [PlaybackEventType] in your ECS systems to
// receive them, for example to pause gameplay while an in-game deck plays.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	app, err := podium.NewApp(podium.AppConfig{Registry: reg, Events: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
