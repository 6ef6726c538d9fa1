package util

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
)

// SetupInterruptHandler returns a context that is cancelled on the first
// SIGINT/SIGTERM. A second signal removes stale temp files next to output
// and exits immediately.
func SetupInterruptHandler(parent context.Context, output string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sig := make(chan os.Signal, 2)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go handleInterrupts(sig, done, cancel, func() {
		CleanupUnfinishedTempFiles(filepath.Dir(output))
		fmt.Println("\nExiting due to interrupt.")
		os.Exit(1)
	})

	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			signal.Stop(sig)
			close(done)
			cancel()
		})
	}
}

// handleInterrupts cancels the run on the first signal and calls force on
// the second. It returns as soon as done is closed.
func handleInterrupts(sig <-chan os.Signal, done <-chan struct{}, cancel context.CancelFunc, force func()) {
	select {
	case <-sig:
	case <-done:
		return
	}

	fmt.Println("\nInterrupt received. Saving what was collected...")
	cancel()

	select {
	case <-sig:
		force()
	case <-done:
	}
}

func CleanupUnfinishedTempFiles(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, tempSuffix) {
			continue
		}

		full := filepath.Join(dir, name)
		if err := os.Remove(full); err != nil {
			fmt.Printf("Error cleaning up %s: %v\n", full, err)
		} else {
			fmt.Printf("Removed %s\n", full)
		}
	}
}
