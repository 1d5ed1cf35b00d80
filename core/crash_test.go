package core

import (
	"os"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/flatsouls/log"
)

type fakeScreen struct{ finis int }

func (s *fakeScreen) Fini() { s.finis++ }

func TestHandleCrash(t *testing.T) {
	codes := make(chan int, 1)
	exit = func(code int) { codes <- code }
	t.Cleanup(func() {
		exit = os.Exit
		RegisterFinalizer(nil)
		RegisterLogger(nil)
	})

	screen := &fakeScreen{}
	core, logs := observer.New(zapcore.DebugLevel)
	RegisterFinalizer(screen)
	RegisterLogger(log.NewWithCore(core))

	HandleCrash(nil)
	if screen.finis != 0 || len(codes) != 0 {
		t.Fatal("nil recover value must be ignored")
	}

	Go(func() { panic("boom") })
	if code := <-codes; code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if screen.finis != 1 {
		t.Errorf("Fini called %d times, want 1", screen.finis)
	}
	entries := logs.FilterMessage("crash").All()
	if len(entries) != 1 {
		t.Fatalf("crash log entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["panic"]; got != "boom" {
		t.Errorf("panic field = %v", got)
	}
}
