package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"none", LevelNone},
		{"", LevelNone},
		{"bogus", LevelNone},
	}
	for _, c := range cases {
		if got := ParseLevel(c.in); got != c.want {
			t.Errorf("%q: expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("dropped")
	logger.Warn("kept", slog.String("op", "/"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %d: %q", len(lines), buf.String())
	}

	var record map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if record["msg"] != "kept" || record["op"] != "/" {
		t.Errorf("unexpected record %v", record)
	}
}

func TestNoneSilencesEverything(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "none").Error("nope")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestReopenableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lispy.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := f.Write([]byte("first\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	rotated := path + ".bak"
	if err := os.Rename(path, rotated); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if err := f.Reopen(); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, err := f.Write([]byte("second\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	old, _ := os.ReadFile(rotated)
	cur, _ := os.ReadFile(path)
	if string(old) != "first\n" || string(cur) != "second\n" {
		t.Errorf("unexpected contents: rotated %q, current %q", old, cur)
	}
}
