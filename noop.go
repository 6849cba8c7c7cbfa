package glapi

import "sync"

var noopTable = sync.OnceValue(func() *Table {
	return Build(Funcs{}, WithName("noop"))
})

// Noop returns the table every slot of which is a stub. It is what Current
// returns on a thread with no bound table. Calls through it have no effect
// and return zero values; with diagnostics enabled each call is reported.
func Noop() *Table { return noopTable() }
