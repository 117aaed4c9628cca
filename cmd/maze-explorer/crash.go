package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
)

// registerCrashScreen sets the screen to finalize before a crash report
func registerCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// handleCrash restores the terminal, prints the stack trace and exits
func handleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	if crashScreen != nil {
		crashScreen.Fini()
		crashScreen = nil
	}
	crashMu.Unlock()

	fmt.Fprintf(os.Stderr, "\n\x1b[31mMAZE EXPLORER CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// goSafe runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so the terminal is reset on crash.
func goSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(r)
			}
		}()
		fn()
	}()
}
