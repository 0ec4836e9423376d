//go:build js && wasm

package podium

import "syscall/js"

// LocationQuery returns window.location.search in the browser.
func LocationQuery() string {
	loc := js.Global().Get("location")
	if loc.IsUndefined() || loc.IsNull() {
		return ""
	}
	return loc.Get("search").String()
}
