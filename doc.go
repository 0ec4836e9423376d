// Package podium plays slide decks on [Ebitengine].
//
// A deck is an ordered list of slides shown one at a time with keyboard
// navigation, a tweened transition between slides, and entrance animations
// inside each slide that replay every time the slide becomes active.
//
// # Quick start
//
// Register presentations once at startup and hand the registry to an [App]:
//
//	reg := podium.MustRegistry(podium.Entry{
//		ID:    "intro",
//		Title: "Introduction",
//		New:   newIntroDeck,
//	})
//	app, err := podium.NewApp(podium.AppConfig{Registry: reg, Query: "?deck=intro"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	podium.Run(podium.RunConfig{Title: "Intro"}, app)
//
// An unknown or missing deck ID shows a [Picker] listing every entry.
//
// # Slides
//
// A [Slide] only reacts to its active flag. [BaseSlide] is a ready-made
// implementation: add static nodes with [BaseSlide.Add] and animated ones
// with [BaseSlide.AddContent] or [BaseSlide.AddStagger].
//
//	s := podium.NewBaseSlide("intro", podium.DefaultStageSize, bg)
//	s.AddContent(podium.NewText("title", "Hello", podium.BoldFont(64)), podium.FadeInUp)
//	s.AddStagger("points", items, podium.FadeInLeft, podium.StaggerConfig{Delay: 0.1})
//
// Entrance animations are described by a [Variant]: a hidden pose, a visible
// pose and timing. The built-in variants are listed by [VariantNames].
//
// # Decks
//
// [NewDeck] validates the slide list and activates the first slide. The deck
// is Idle or Transitioning (see [DeckState]); navigation outside the deck is
// ignored and a request during a transition replaces it. Keys:
//
//	Right, Space, Enter   next slide
//	Left, Backspace       previous slide
//	Home, End             first and last slide
//	F                     toggle fullscreen
//	Escape                leave fullscreen
//	C                     toggle the control overlay
//
// [Deck.Dispose] removes the deck's key handlers and cancels its animations.
//
// # Playback events
//
// Set [AppConfig.Events] to an [EventSink] to be told when a deck opens,
// changes slide or closes. The ecs module provides a sink that publishes
// into a donburi world.
//
// [Ebitengine]: https://ebitengine.org
package podium
