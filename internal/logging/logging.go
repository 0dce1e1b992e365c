package logging

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup installs the default slog logger. With an empty path logs are
// discarded, since stdout and stderr belong to the terminal UI. The returned
// closer must be called on exit.
func Setup(path, level string) (io.Closer, error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return closerFunc(func() error { return nil }), nil
	}
	f, err := tea.LogToFile(path, "swipedemo")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Install(f, level)
	return f, nil
}

// Install points the default slog logger at w.
func Install(w io.Writer, level string) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})))
}

func WithModule(module string) *slog.Logger {
	return slog.With("module", module)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
