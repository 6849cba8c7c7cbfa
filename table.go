package glapi

import "log/slog"

// Table is a complete dispatch table: one callable per operation, in slot
// order. Every slot is set; operations a backend does not provide run a stub
// that does nothing. A Table is immutable once built and safe for concurrent
// use by any number of goroutines.
type Table struct {
	name   string
	f      Funcs
	filled []Op
}

// Build returns a table holding the implementations in f. Nil slots are set
// from the WithFallback table if one is given, and to the no-op stub
// otherwise. Build never fails.
func Build(f Funcs, opts ...BuildOption) *Table {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb := &stubs
	if o.fallback != nil {
		fb = &o.fallback.f
	}
	t := &Table{name: o.name, f: f}
	t.filled = t.f.fill(fb)
	checkTable(t)

	if len(t.filled) > 0 {
		Logger().Debug("glapi: table built",
			slog.String("table", t.name),
			slog.Int("provided", NumOps-len(t.filled)),
			slog.Int("filled", len(t.filled)))
	}
	return t
}

// BuildFromLookup builds a table by asking lookup for each operation by its
// entry point name ("glBegin"), the way a driver is bound from a symbol
// table. A nil result leaves the slot to be filled like Build does. A value
// that is not a function of the slot's exact type is ignored and logged.
func BuildFromLookup(lookup func(name string) any, opts ...BuildOption) *Table {
	var f Funcs
	for _, op := range f.load(lookup) {
		Logger().Warn("glapi: lookup returned wrong type",
			slog.String("op", op.GLName()))
	}
	return Build(f, opts...)
}

// Name returns the label given with WithName.
func (t *Table) Name() string { return t.name }

// Missing returns the operations the backend did not provide, in slot
// order. These slots hold the fallback or no-op implementation.
func (t *Table) Missing() []Op {
	return append([]Op(nil), t.filled...)
}

// Provides reports whether the backend supplied op itself.
func (t *Table) Provides(op Op) bool {
	if !op.IsValid() {
		return false
	}
	for _, m := range t.filled {
		if m == op {
			return false
		}
	}
	return true
}

// Slot returns the implementation held for op as a func value of the
// slot's type, or nil if op is out of range.
func (t *Table) Slot(op Op) any {
	if !op.IsValid() {
		return nil
	}
	return t.f.slot(op)
}

// Funcs returns a copy of the table's implementations. Wrappers use it to
// derive a new table from an existing one.
func (t *Table) Funcs() Funcs { return t.f }

// Validate reports whether every slot is set. It is always true for tables
// returned by Build.
func (t *Table) Validate() bool {
	return len(t.f.unset()) == 0
}
