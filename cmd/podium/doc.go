// Command podium plays slide decks.
//
//	podium play [deck-id | manifest.yaml]   open a deck, or the picker
//	podium list                             list registered decks
//	podium check manifest.yaml...           validate deck manifests
//	podium config init                      write a sample config file
//
// Built-in decks are embedded from decks/; more are loaded from the
// directories named in the config file's [decks] section.
package main
