package logging

import (
	"context"
	"sync/atomic"
)

// MirrorFunc receives every emitted log record after the primary core has
// accepted it. Used to fan records out to an OTLP exporter.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

var mirrorFunc atomic.Pointer[MirrorFunc]

// SetMirror installs or removes (nil) the process-wide log mirror.
func SetMirror(fn MirrorFunc) {
	if fn == nil {
		mirrorFunc.Store(nil)
		return
	}
	mirrorFunc.Store(&fn)
}

func mirror(ctx context.Context, level Level, msg string, args ...any) {
	fn := mirrorFunc.Load()
	if fn == nil {
		return
	}
	(*fn)(ctx, level, msg, args...)
}
