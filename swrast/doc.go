// Package swrast is the software renderer behind the "software" backend.
//
// A Context owns a color buffer and two dispatch tables. The exec table runs
// operations immediately; the save table, active between NewList and EndList,
// records the operations that belong in display lists and runs the rest
// through exec. The context swaps the binding of the calling thread when it
// switches tables, so code going through the glapi entry points does not
// need to know which one is active.
//
// The renderer implements the state and pixel paths of its operations:
// clears with masks and scissoring, point primitives, DrawPixels with pixel
// zoom, ReadPixels, display lists and texture storage. Other primitive modes
// are accepted and validated but not rasterized.
//
// A Context is not safe for concurrent use, like a GL context. Bind it to one
// thread at a time.
package swrast
