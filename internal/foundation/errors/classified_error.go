package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
)

// ClassifiedError is an error with a category, a severity and structured context.
// The cause stays reachable through Unwrap so sentinels such as
// docs.ErrRouteCollision still match with errors.Is.
type ClassifiedError struct {
	category ErrorCategory
	severity ErrorSeverity
	message  string
	cause    error
	context  ErrorContext
}

func (e *ClassifiedError) Error() string {
	head := fmt.Sprintf("[%s:%s] %s", e.category, e.severity, e.message)
	if e.cause == nil {
		return head
	}
	return head + ": " + e.cause.Error()
}

func (e *ClassifiedError) Unwrap() error { return e.cause }

func (e *ClassifiedError) Category() ErrorCategory { return e.category }
func (e *ClassifiedError) Severity() ErrorSeverity { return e.severity }
func (e *ClassifiedError) Message() string         { return e.message }
func (e *ClassifiedError) Cause() error            { return e.cause }
func (e *ClassifiedError) Context() ErrorContext   { return e.context }
func (e *ClassifiedError) IsFatal() bool           { return e.severity == SeverityFatal }

// WithContext returns a copy of e with key=value added.
func (e *ClassifiedError) WithContext(key string, value any) *ClassifiedError {
	cp := *e
	cp.context = e.context.with(key, value)
	return &cp
}

// Is matches another ClassifiedError with the same category and message.
func (e *ClassifiedError) Is(target error) bool {
	other, ok := target.(*ClassifiedError)
	return ok && e.category == other.category && e.message == other.message
}

// log writes e to logger at the level implied by its severity.
func (e *ClassifiedError) log(ctx context.Context, logger *slog.Logger, extra ...slog.Attr) {
	attrs := append([]slog.Attr{slog.String("category", string(e.category))}, extra...)
	attrs = append(attrs, e.context.attrs()...)
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	logger.LogAttrs(ctx, e.severity.level(), e.message, attrs...)
}

// AsClassified finds the first ClassifiedError in err's chain.
func AsClassified(err error) (*ClassifiedError, bool) {
	var c *ClassifiedError
	if stderrors.As(err, &c) {
		return c, true
	}
	return nil, false
}

// IsClassified checks if an error chain contains a ClassifiedError.
func IsClassified(err error) bool {
	_, ok := AsClassified(err)
	return ok
}

// HasCategory reports whether the first classified error in the chain has category.
func HasCategory(err error, category ErrorCategory) bool {
	c, ok := AsClassified(err)
	return ok && c.category == category
}

// GetCategory extracts the category from an error, or returns CategoryInternal.
func GetCategory(err error) ErrorCategory {
	if c, ok := AsClassified(err); ok {
		return c.category
	}
	return CategoryInternal
}

// GetSeverity extracts the severity from an error, or returns SeverityError.
func GetSeverity(err error) ErrorSeverity {
	if c, ok := AsClassified(err); ok {
		return c.severity
	}
	return SeverityError
}
