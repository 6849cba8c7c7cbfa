package glapi

import (
	"strconv"
	"strings"
)

// Op identifies a dispatch slot. Values are stable: a slot keeps its index
// for the lifetime of the table layout, and new operations are appended.
type Op uint16

// IsValid reports whether op names a slot of the table.
func (op Op) IsValid() bool { return op < NumOps }

// String returns the operation name without the gl prefix, such as "Begin".
func (op Op) String() string {
	if !op.IsValid() {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opNames[op]
}

// GLName returns the C entry point name, such as "glBegin".
func (op Op) GLName() string {
	if !op.IsValid() {
		return op.String()
	}
	return "gl" + opNames[op]
}

// Listable reports whether op is recorded into a display list while one is
// being compiled. Other operations execute immediately even in compile mode.
func (op Op) Listable() bool {
	return op.IsValid() && opListable[op]
}

// OpByName returns the operation named name. Both "Begin" and "glBegin" are
// accepted.
func OpByName(name string) (Op, bool) {
	name = strings.TrimPrefix(name, "gl")
	for i, n := range opNames {
		if n == name {
			return Op(i), true
		}
	}
	return 0, false
}

// Ops returns every operation in slot order.
func Ops() []Op {
	ops := make([]Op, NumOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}
