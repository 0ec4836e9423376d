// Package slides provides ready-made podium slides: title, bullet list,
// timeline, image, QR code and PDF pages. Every slide embeds
// [podium.BaseSlide], so its entrance animations replay each time the deck
// activates it.
package slides
