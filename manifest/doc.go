// Package manifest reads YAML deck descriptions and turns them into podium
// presentations built from the slides package.
//
//	id: welcome
//	title: Welcome
//	transition: slide
//	slides:
//	  - {kind: title, title: Podium, subtitle: Decks for Ebitengine}
//	  - kind: bullets
//	    title: Why
//	    items: [Keyboard driven, Tweened, Static]
//
// Slide kinds: title, bullets, timeline, qr, image, pdf.
package manifest
