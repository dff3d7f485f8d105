// Package debug is the engine's diagnostic log. Lines are appended to the
// file named by TESSERA_DEBUG (or passed to Init) with a timestamp prefix.
// With neither, Log does nothing.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log path.
const EnvVar = "TESSERA_DEBUG"

var (
	out    io.Writer
	closer io.Closer
	loaded bool
	mu     sync.Mutex
)

// Init opens path for appending and routes log output to it.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	loaded = true

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	out = f
	closer = f
	return nil
}

// SetOutput routes log output to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	loaded = true
	out = w
}

// Enabled reports whether log lines are written anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()

	loadLocked()
	return out != nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if closer != nil {
		err = closer.Close()
		closer = nil
	}
	out = nil
	return err
}

// loadLocked consults the environment once. Caller must hold mu.
func loadLocked() {
	if loaded {
		return
	}
	loaded = true
	if path := os.Getenv(EnvVar); path != "" {
		if err := initLocked(path); err != nil {
			fmt.Fprintf(os.Stderr, "tessera: %v\n", err)
		}
	}
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	loadLocked()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
	if f, ok := out.(*os.File); ok {
		f.Sync()
	}
}
