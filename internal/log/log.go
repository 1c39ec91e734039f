package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
)

// LevelTrace sits below slog's debug level.
const LevelTrace = slog.LevelDebug - 4

// LevelNone is above every level the program logs at.
const LevelNone = slog.LevelError + 4

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return LevelNone
	}
}

// ReopenableFile is a log destination that can be reopened in place, so the file
// can be rotated underneath a running process:
//
//	mv lispy.log lispy.bak && kill -HUP <pid>
type ReopenableFile struct {
	path string
	mu   sync.Mutex
	fh   *os.File
	sigs chan os.Signal
}

func OpenFile(path string) (*ReopenableFile, error) {
	// Create parent directories if they don't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory for %s: %w", path, err)
	}
	f := &ReopenableFile{path: path}
	if err := f.Reopen(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *ReopenableFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fh.Write(p)
}

func (f *ReopenableFile) Reopen() error {
	fh, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", f.path, err)
	}

	f.mu.Lock()
	old := f.fh
	f.fh = fh
	f.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

// ReopenOnHangup reopens the file every time the process receives SIGHUP.
func (f *ReopenableFile) ReopenOnHangup() {
	f.sigs = make(chan os.Signal, 1)
	signal.Notify(f.sigs, syscall.SIGHUP)
	go func() {
		for range f.sigs {
			if err := f.Reopen(); err != nil {
				fmt.Fprintf(os.Stderr, "could not reopen log file: %v\n", err)
			}
		}
	}()
}

func (f *ReopenableFile) Close() error {
	if f.sigs != nil {
		signal.Stop(f.sigs)
		close(f.sigs)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fh.Close()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds a JSON slog logger at the given level writing to logFile, or to
// stderr when logFile is empty or cannot be opened.
func Setup(level, logFile string) (*slog.Logger, io.Closer) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if logFile != "" {
		f, err := OpenFile(logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v; falling back to stderr\n", err)
		} else {
			f.ReopenOnHangup()
			w, closer = f, f
		}
	}

	return New(w, level), closer
}

func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: false,
		Level:     ParseLevel(level),
	}))
}
