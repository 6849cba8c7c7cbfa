//go:build windows

package glapi

import "golang.org/x/sys/windows"

const threadLocal = true

func threadID() int64 { return int64(windows.GetCurrentThreadId()) }
