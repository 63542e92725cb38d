// Package debug provides conditional debug logging for pianofolio.
//
// Debug logging is enabled by setting the PIANOFOLIO_DEBUG environment
// variable, which writes to stderr:
//
//	PIANOFOLIO_DEBUG=1 pianofolio --list
//
// Inside the TUI stderr shares the terminal with the alt screen, so prefer a
// log file there:
//
//	PIANOFOLIO_DEBUG_LOG=/tmp/pianofolio.log pianofolio
//
// When disabled (default), all debug functions are no-ops.
package debug

import (
	"io"
	"log"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const prefix = "[PIANOFOLIO] "

var (
	mu      sync.Mutex
	enabled bool
	logger  *log.Logger
	logFile *os.File
)

func init() {
	if os.Getenv("PIANOFOLIO_DEBUG") != "" {
		enabled = true
		logger = log.New(os.Stderr, prefix, log.Ltime|log.Lmicroseconds)
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetEnabled allows programmatic control of debug logging.
func SetEnabled(e bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = e
	if e && logger == nil {
		logger = log.New(os.Stderr, prefix, log.Ltime|log.Lmicroseconds)
	}
}

// SetOutput redirects debug output and enables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
	logger = log.New(w, prefix, log.Ltime|log.Lmicroseconds)
}

// EnableFile routes debug output to path, appending. Call Close on exit.
func EnableFile(path string) error {
	l := log.New(io.Discard, prefix, log.Ltime|log.Lmicroseconds)
	f, err := tea.LogToFileWith(path, prefix, l)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	enabled = true
	logger = l
	logFile = f
	return nil
}

// Close releases the log file opened by EnableFile, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	enabled = false
	return err
}

// Log writes a debug message if debug logging is enabled.
// Uses printf-style formatting.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	logger.Printf(format, args...)
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	Log("%s took %v", name, d)
}

// LogIf writes a debug message only if the condition is true.
func LogIf(cond bool, format string, args ...any) {
	if !cond {
		return
	}
	Log(format, args...)
}

// LogEnterExit logs function entry and exit with timing.
//
//	func myFunc() {
//	    defer debug.LogEnterExit("myFunc")()
//	}
func LogEnterExit(name string) func() {
	if !Enabled() {
		return func() {}
	}
	Log("-> %s", name)
	start := time.Now()
	return func() {
		Log("<- %s (%v)", name, time.Since(start))
	}
}
