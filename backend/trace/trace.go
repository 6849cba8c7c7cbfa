// Package trace wraps a dispatch table so that every call is logged before
// it is forwarded.
//
// The wrapper is itself a complete table, so it can be bound like any other:
//
//	t := trace.Wrap(ctx.Dispatch(), slog.Default())
//	glapi.With(t, draw)
//
// Calls are logged at debug level with the GL entry point name as the
// message and the arguments as attributes. Slices are logged by length.
//
// The wrapped table is fixed at Wrap time. A context that swaps its table
// for display list compilation is traced in immediate mode only.
package trace

import (
	"log/slog"
	"strconv"

	"github.com/gogpu/glapi"
)

// Wrap returns a table that logs each call to logger and then calls the
// same operation on inner. A nil logger uses glapi.Logger() as of the call
// to Wrap.
func Wrap(inner *glapi.Table, logger *slog.Logger) *glapi.Table {
	if logger == nil {
		logger = glapi.Logger()
	}
	return glapi.Build(funcs(inner, logger), glapi.WithName("trace("+inner.Name()+")"))
}

// hex formats enumerants the way GL headers spell them.
func hex(v uint32) string {
	return "0x" + strconv.FormatUint(uint64(v), 16)
}
