package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	ferrors "git.home.luguber.info/inful/mkpy/internal/foundation/errors"
)

// ErrInvalidTheme indicates the configured theme is not one of the built-in themes.
var ErrInvalidTheme = errors.New("invalid theme")

// Validate checks the configuration. Theme errors are reported first.
func (c Config) Validate() error {
	if !c.Theme.Valid() {
		names := make([]string, 0, len(Themes()))
		for _, t := range Themes() {
			names = append(names, string(t))
		}
		return ferrors.WrapError(
			fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme),
			ferrors.CategoryValidation,
			fmt.Sprintf("theme '%s' not found, available: %s", c.Theme, strings.Join(names, ", ")),
		).Fatal().WithContext("theme", string(c.Theme)).Build()
	}
	if c.Port < 1 || c.Port > 65535 {
		return ferrors.ValidationError(fmt.Sprintf("port %d out of range 1-65535", c.Port)).
			WithContext("port", c.Port).Build()
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps a configured level name to a slog level.
func ParseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, ferrors.ValidationError(fmt.Sprintf("unknown log level %q", raw)).
			WithContext("log_level", raw).Build()
	}
}
