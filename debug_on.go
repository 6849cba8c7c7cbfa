//go:build glapidebug

package glapi

// checkTable panics if a built table has an unset slot. Build guarantees
// completeness, so a failure here means the generated fill code and the
// Funcs layout disagree.
func checkTable(t *Table) {
	if missing := t.f.unset(); len(missing) > 0 {
		panic("glapi: table " + t.name + " has unset slot " + missing[0].String())
	}
}
