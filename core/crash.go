// Package core holds process-wide crash handling shared by the platform front ends
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/flatsouls/log"
)

// Finalizer restores an output device before the crash report is printed
type Finalizer interface {
	Fini()
}

var (
	crashMu        sync.Mutex
	crashFinalizer Finalizer
	crashLogger    log.Log
	exit           = os.Exit
)

// RegisterFinalizer sets the device restored on crash; nil clears it
func RegisterFinalizer(f Finalizer) {
	crashMu.Lock()
	crashFinalizer = f
	crashMu.Unlock()
}

// RegisterLogger sets the logger that records the crash before exit
func RegisterLogger(l log.Log) {
	crashMu.Lock()
	crashLogger = l
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler: it restores the screen, logs and prints the
// stack trace, then exits with status 1
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	f, l := crashFinalizer, crashLogger
	crashMu.Unlock()

	if f != nil {
		f.Fini()
	}

	stack := debug.Stack()
	if l != nil {
		l.Error("crash", log.Any("panic", r), log.String("stack", string(stack)))
		_ = l.Sync()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)

	exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so the screen is restored on crash
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

// Recover is deferred at the top of goroutines started without Go
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}
