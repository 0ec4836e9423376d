// Package logging builds the slog loggers used by the podium CLI.
//
// It owns the console and JSON handlers, level parsing, and the session_id
// tagging applied to every record of a run. Library code in package podium
// only ever receives a *slog.Logger; nothing there depends on this package.
package logging
