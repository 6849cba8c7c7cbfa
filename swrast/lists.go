package swrast

import (
	"github.com/gogpu/glapi"
)

// maxListNesting bounds CallList recursion.
const maxListNesting = 64

// displayList is a compiled sequence of calls into the exec table.
type displayList struct {
	cmds []func()
}

type lists struct {
	store map[uint32]*displayList
	next  uint32

	// compiling is non-nil between NewList and EndList.
	compiling *displayList
	name      uint32
	mode      glapi.Enum

	depth int
}

func (l *lists) init() {
	*l = lists{store: make(map[uint32]*displayList), next: 1}
}

// compile records fn into the list being compiled, and runs it as well in
// COMPILE_AND_EXECUTE mode.
func (c *Context) compile(fn func()) {
	l := &c.lists
	if l.compiling == nil {
		fn()
		return
	}
	l.compiling.cmds = append(l.compiling.cmds, fn)
	if l.mode == glapi.COMPILE_AND_EXECUTE {
		fn()
	}
}

func (c *Context) newList(list uint32, mode glapi.Enum) {
	if !c.outsideBegin() {
		return
	}
	if list == 0 {
		c.setError(glapi.INVALID_VALUE)
		return
	}
	if mode != glapi.COMPILE && mode != glapi.COMPILE_AND_EXECUTE {
		c.setError(glapi.INVALID_ENUM)
		return
	}
	if c.lists.compiling != nil {
		c.setError(glapi.INVALID_OPERATION)
		return
	}
	c.lists.compiling = &displayList{}
	c.lists.name = list
	c.lists.mode = mode
	c.switchTable(c.save)
}

func (c *Context) endList() {
	if !c.outsideBegin() {
		return
	}
	l := &c.lists
	if l.compiling == nil {
		c.setError(glapi.INVALID_OPERATION)
		return
	}
	l.store[l.name] = l.compiling
	if l.name >= l.next {
		l.next = l.name + 1
	}
	l.compiling = nil
	c.switchTable(c.exec)
}

// switchTable makes t the active table and moves the calling thread's
// binding along with it when this context is current there.
func (c *Context) switchTable(t *glapi.Table) {
	if c.IsCurrent() {
		glapi.SetCurrent(t)
	}
	c.active = t
}

func (c *Context) callList(list uint32) {
	l := &c.lists
	dl, ok := l.store[list]
	if !ok || l.depth >= maxListNesting {
		return
	}
	l.depth++
	defer func() { l.depth-- }()
	for _, cmd := range dl.cmds {
		cmd()
	}
}

// genLists reserves n consecutive unused list names and returns the first.
func (c *Context) genLists(n int32) uint32 {
	if !c.outsideBegin() {
		return 0
	}
	if n < 0 {
		c.setError(glapi.INVALID_VALUE)
		return 0
	}
	if n == 0 {
		return 0
	}
	l := &c.lists
	base := l.next
	for i := uint32(0); i < uint32(n); i++ {
		if _, used := l.store[base+i]; used {
			base += i + 1
			i = ^uint32(0) // restart the scan at the new base
		}
	}
	for i := uint32(0); i < uint32(n); i++ {
		l.store[base+i] = &displayList{}
	}
	l.next = base + uint32(n)
	return base
}

func (c *Context) deleteLists(list uint32, n int32) {
	if !c.outsideBegin() {
		return
	}
	if n < 0 {
		c.setError(glapi.INVALID_VALUE)
		return
	}
	for i := uint32(0); i < uint32(n); i++ {
		delete(c.lists.store, list+i)
	}
}

// IsList reports whether list names a display list.
func (c *Context) IsList(list uint32) bool {
	_, ok := c.lists.store[list]
	return ok
}
