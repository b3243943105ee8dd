package env

import (
	"log/slog"
	"strings"
)

const DefaultLogsDateFormat = "2006_01_02"

type LogsEnvironment struct {
	Level      string `validate:"required,lowercase,oneof=debug info warn error"`
	Dir        string `validate:"omitempty"`
	DateFormat string `validate:"required_with=Dir"`
}

func (e LogsEnvironment) WritesToFile() bool {
	return strings.TrimSpace(e.Dir) != ""
}

func (e LogsEnvironment) SlogLevel() slog.Level {
	switch e.Level {
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
