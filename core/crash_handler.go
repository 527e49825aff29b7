package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/ttacon/chalk"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer
	crashOut    io.Writer = os.Stderr
	crashExit             = os.Exit
	crashOnce   sync.Once
)

// SetCrashScreen registers the screen restored before a crash report is printed
func SetCrashScreen(f Finalizer) {
	crashMu.Lock()
	crashScreen = f
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
// Only the first crash is reported; later panics from other goroutines exit quietly
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashOnce.Do(func() {
		crashMu.Lock()
		screen := crashScreen
		crashMu.Unlock()

		if screen != nil {
			screen.Fini()
		}

		fmt.Fprintf(crashOut, "\n%s\n", chalk.Red.Color(fmt.Sprintf("SPACE-BLASTER CRASHED: %v", r)))
		fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())
	})

	crashExit(1)
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
