package glapi

import (
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// DiagnosticFunc receives a report of a call that reached a no-op stub.
type DiagnosticFunc func(op Op, msg string)

var (
	diagEnabled  atomic.Bool
	diagCallback atomic.Pointer[DiagnosticFunc]
)

func init() {
	diagEnabled.Store(envEnabled(os.Getenv("GLAPI_DEBUG")))
}

func envEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off", "no":
		return false
	}
	return true
}

// SetDiagnosticsEnabled turns stub reporting on or off for the whole
// process. The initial state is taken from the GLAPI_DEBUG environment
// variable.
func SetDiagnosticsEnabled(on bool) { diagEnabled.Store(on) }

// DiagnosticsEnabled reports whether stub calls are reported.
func DiagnosticsEnabled() bool { return diagEnabled.Load() }

// SetDiagnosticCallback registers fn to receive stub reports in addition to
// the warning logged through Logger. Pass nil to unregister.
func SetDiagnosticCallback(fn DiagnosticFunc) {
	if fn == nil {
		diagCallback.Store(nil)
		return
	}
	diagCallback.Store(&fn)
}

// diagnose is called by every stub.
func diagnose(op Op) {
	if !diagEnabled.Load() {
		return
	}
	msg := op.GLName() + " called without a current context or not supported by the backend"
	Logger().Warn("glapi: call without current context", slog.String("op", op.GLName()))
	if fn := diagCallback.Load(); fn != nil {
		(*fn)(op, msg)
	}
}
