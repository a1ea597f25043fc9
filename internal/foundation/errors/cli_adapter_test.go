package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("invalid theme").Build(), expected: 2},
		{name: "not found", err: NotFoundError("folder missing").Build(), expected: 4},
		{name: "config", err: ConfigError("bad config").Build(), expected: 7},
		{name: "filesystem", err: FileSystemError("write failed").Build(), expected: 11},
		{name: "render", err: RenderError("render failed").Build(), expected: 11},
		{name: "internal", err: InternalError("boom").Build(), expected: 10},
		{name: "unclassified", err: errors.New("unknown"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())

	err := WrapError(errors.New("permission denied"), CategoryFileSystem, "cannot write output").Build()

	if got := quiet.FormatError(err); got != "Error: cannot write output: permission denied" {
		t.Errorf("unexpected quiet format %q", got)
	}
	if got := verbose.FormatError(err); !strings.Contains(got, "[filesystem:error]") {
		t.Errorf("expected verbose format to include classification, got %q", got)
	}
	if got := quiet.FormatError(nil); got != "" {
		t.Errorf("expected empty string for nil, got %q", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var out bytes.Buffer
	code := -1
	adapter := NewCLIErrorAdapter(false, slog.Default())
	adapter.out = &out
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(ValidationError("theme 'neon' not found").Build())

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(out.String(), "theme 'neon' not found") {
		t.Errorf("expected message on output, got %q", out.String())
	}
}
