// Package errors provides the classified error primitives used across mkpy.
//
// Errors carry a category (config, validation, not_found, filesystem, render, ...),
// a severity and structured context. Adapters translate them into CLI exit codes
// and HTTP status codes so the delivery layers never need to inspect messages.
//
// Example usage:
//
//	err := errors.WrapError(readErr, errors.CategoryFileSystem, "failed to read markdown source").
//		WithContext("route", route).
//		WithContext("path", sourcePath).
//		Build()
package errors
