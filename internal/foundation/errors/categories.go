package errors

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
)

// ErrorCategory groups errors by how the CLI and the HTTP server report them.
type ErrorCategory string

const (
	CategoryConfig     ErrorCategory = "config"     // unreadable or malformed configuration file
	CategoryValidation ErrorCategory = "validation" // bad theme, port, log level, route collision
	CategoryNotFound   ErrorCategory = "not_found"  // docs folder, route or source file missing
	CategoryFileSystem ErrorCategory = "filesystem" // reading sources, writing export output
	CategoryRender     ErrorCategory = "render"     // markdown conversion or template execution
	CategoryNetwork    ErrorCategory = "network"    // listener setup
	CategoryInternal   ErrorCategory = "internal"
)

type categoryCodes struct {
	exit   int
	status int
}

var codes = map[ErrorCategory]categoryCodes{
	CategoryValidation: {exit: 2, status: http.StatusBadRequest},
	CategoryNotFound:   {exit: 4, status: http.StatusNotFound},
	CategoryConfig:     {exit: 7, status: http.StatusBadRequest},
	CategoryNetwork:    {exit: 8, status: http.StatusBadGateway},
	CategoryInternal:   {exit: 10, status: http.StatusInternalServerError},
	CategoryFileSystem: {exit: 11, status: http.StatusInternalServerError},
	CategoryRender:     {exit: 11, status: http.StatusInternalServerError},
}

// ExitCode is the process exit status for the category; unknown categories exit 1.
func (c ErrorCategory) ExitCode() int {
	if cc, ok := codes[c]; ok {
		return cc.exit
	}
	return 1
}

// HTTPStatus is the response status for the category; unknown categories map to 500.
func (c ErrorCategory) HTTPStatus() int {
	if cc, ok := codes[c]; ok {
		return cc.status
	}
	return http.StatusInternalServerError
}

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution completely
	SeverityError   ErrorSeverity = "error"   // Fails the current operation
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

func (s ErrorSeverity) level() slog.Level {
	if s == SeverityWarning {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// ErrorContext carries structured fields such as route, path or theme.
type ErrorContext map[string]any

// Get retrieves a context value.
func (c ErrorContext) Get(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

// GetString retrieves a string context value.
func (c ErrorContext) GetString(key string) (string, bool) {
	s, ok := c[key].(string)
	return s, ok
}

// with returns a copy of c holding key=value; c itself is never modified.
func (c ErrorContext) with(key string, value any) ErrorContext {
	out := make(ErrorContext, len(c)+1)
	maps.Copy(out, c)
	out[key] = value
	return out
}

// attrs renders the context as slog attributes in key order.
func (c ErrorContext) attrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, len(c))
	for _, k := range slices.Sorted(maps.Keys(c)) {
		attrs = append(attrs, slog.Any(k, c[k]))
	}
	return attrs
}
