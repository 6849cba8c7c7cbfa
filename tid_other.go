//go:build !linux && !windows

package glapi

const threadLocal = false

// threadID is constant, so every thread shares one binding.
func threadID() int64 { return 0 }
