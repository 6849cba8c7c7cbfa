//go:build linux

package glapi

import "golang.org/x/sys/unix"

const threadLocal = true

func threadID() int64 { return int64(unix.Gettid()) }
