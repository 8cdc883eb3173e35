package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu        sync.Mutex
	crashFinalizer func()
)

// SetCrashFinalizer registers the terminal restore hook run before a crash report
func SetCrashFinalizer(fn func()) {
	crashMu.Lock()
	crashFinalizer = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fin := crashFinalizer
	crashMu.Unlock()
	if fin != nil {
		fin()
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSUGAR POP CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
