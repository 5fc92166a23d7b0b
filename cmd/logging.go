package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Log lines buffered before new ones are dropped
const logBufferSize = 1000

// LogDestination is where the debug log is written
type LogDestination int

const (
	LogToFile LogDestination = iota
	LogToStderr
)

// determineLogDestination picks the debug log location for the platform.
// Paths starting with ~ are relative to the user's home directory.
func determineLogDestination(goos string) (LogDestination, string) {
	switch goos {
	case "linux":
		return LogToFile, "~/" + cfgFilePath + "debug.log"
	case "darwin":
		return LogToFile, "~/Library/Logs/incidentrank.log"
	}
	return LogToStderr, ""
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// openLog opens the debug log for this platform, truncating it if it exists.
// On platforms without a log location it returns os.Stderr.
func openLog(goos string) (*os.File, error) {
	dest, path := determineLogDestination(goos)
	if dest == LogToStderr {
		return os.Stderr, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cmd.openLog(): %w", err)
	}
	path = expandHome(path, home)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil { //nolint:gomnd
		return nil, fmt.Errorf("cmd.openLog(): %w", err)
	}

	// Truncate to prevent unbounded growth
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gomnd
	if err != nil {
		return nil, fmt.Errorf("cmd.openLog(): %w", err)
	}
	return f, nil
}

// SetupLogging points the global logger at the debug log. The returned func
// flushes and closes it.
func SetupLogging() (func(), error) {
	f, err := openLog(runtime.GOOS)
	if err != nil {
		return nil, err
	}

	w := newAsyncWriter(f, logBufferSize)
	log.SetOutput(w)

	return func() {
		w.Close() //nolint:errcheck
		if f != os.Stderr {
			f.Close() //nolint:errcheck
		}
	}, nil
}

// asyncWriter hands log lines to a background goroutine so log I/O never
// blocks the TUI. Lines are dropped, and counted, while the buffer is full.
type asyncWriter struct {
	out  chan []byte
	done chan struct{}

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Int64
}

func newAsyncWriter(w io.Writer, bufferSize int) *asyncWriter {
	aw := &asyncWriter{
		out:  make(chan []byte, bufferSize),
		done: make(chan struct{}),
	}

	go func() {
		defer close(aw.done)
		for msg := range aw.out {
			w.Write(msg) //nolint:errcheck
		}
	}()

	return aw
}

func (aw *asyncWriter) Write(p []byte) (int, error) {
	aw.mu.RLock()
	defer aw.mu.RUnlock()
	if aw.closed {
		return 0, os.ErrClosed
	}

	// The caller may reuse p
	msg := make([]byte, len(p))
	copy(msg, p)

	select {
	case aw.out <- msg:
	default:
		aw.dropped.Add(1)
	}
	return len(p), nil
}

// Dropped is the number of lines discarded because the buffer was full
func (aw *asyncWriter) Dropped() int64 {
	return aw.dropped.Load()
}

// Close writes out everything buffered. Later writes fail with os.ErrClosed.
func (aw *asyncWriter) Close() error {
	aw.mu.Lock()
	if !aw.closed {
		aw.closed = true
		close(aw.out)
	}
	aw.mu.Unlock()

	<-aw.done
	return nil
}
