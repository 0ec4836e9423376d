//go:build !(js && wasm)

package podium

// LocationQuery returns the page query string. Outside the browser there is
// none; desktop builds pass one through the --query flag instead.
func LocationQuery() string { return "" }
