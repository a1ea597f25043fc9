package errors

// Package errors provides sentinel errors for route discovery and page lookup.
// Callers classify failures with errors.Is against these values.

import "errors"

var (
	// ErrFolderNotFound indicates the configured documentation folder does not exist.
	ErrFolderNotFound = errors.New("documentation folder not found")

	// ErrDocsDirWalkFailed indicates filesystem traversal of the docs folder failed.
	ErrDocsDirWalkFailed = errors.New("documentation directory walk failed")

	// ErrInvalidRelativePath indicates calculating a path relative to the docs folder failed.
	ErrInvalidRelativePath = errors.New("invalid relative path calculation")

	// ErrRouteCollision indicates two source files normalize to the same route.
	ErrRouteCollision = errors.New("route collision detected")

	// ErrRouteNotFound indicates a route is not present in the route table.
	ErrRouteNotFound = errors.New("route not found")

	// ErrSourceRead indicates a markdown source could not be read at render time.
	ErrSourceRead = errors.New("documentation source read failed")
)
