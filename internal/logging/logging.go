// Package logging provides the library's structured loggers, built on
// log/slog. Components obtain a scoped logger via New; the host application
// controls the default handler (or installs one through Init).
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Init installs a default slog handler at the given level. If w is nil,
// os.Stderr is used. Format must be "text" or "json".
func Init(level slog.Level, format string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// New returns a logger carrying a "component" attribute for module-scoped
// logging.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
