package rawhttp

import "errors"

var (
	// ErrHandlerPanic wraps a panic recovered during a connection
	// handler cycle, usually from a misbehaving Renderer.
	ErrHandlerPanic = errors.New("rawhttp: handler panic")
)
