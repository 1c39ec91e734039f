package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
prompt = "calc> "
color = false
history = "sqlite:/tmp/lispy.db"
max_depth = 64
`)

	c := DefaultConfiguration()
	if err := LoadConfigFile(&c, path, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Prompt != "calc> " {
		t.Errorf("prompt: got %q", c.Prompt)
	}
	if c.Color {
		t.Errorf("color: expected false")
	}
	if c.HistoryDSN != "sqlite:/tmp/lispy.db" {
		t.Errorf("history: got %q", c.HistoryDSN)
	}
	if c.MaxDepth != 64 {
		t.Errorf("max_depth: got %d", c.MaxDepth)
	}
	// untouched keys keep their defaults
	if c.HistorySize != DefaultHistorySize {
		t.Errorf("history_size: got %d", c.HistorySize)
	}
	if c.LogLevel != "none" {
		t.Errorf("log_level: got %q", c.LogLevel)
	}
}

func TestLoadConfigFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `promtp = "typo"`)

	c := DefaultConfiguration()
	err := LoadConfigFile(&c, path, false)
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
	if !strings.Contains(err.Error(), "promtp") {
		t.Errorf("error should name the key, got %v", err)
	}
}

func TestLoadConfigFileValidates(t *testing.T) {
	path := writeConfig(t, `max_depth = -1`)

	c := DefaultConfiguration()
	if err := LoadConfigFile(&c, path, false); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	c := DefaultConfiguration()
	if err := LoadConfigFile(&c, missing, true); err != nil {
		t.Errorf("optional missing file should be ignored, got %v", err)
	}
	if err := LoadConfigFile(&c, missing, false); err == nil {
		t.Errorf("explicit missing file should fail")
	}
}

func TestGetLineAndColumn(t *testing.T) {
	src := "(+ 1\n  2))"
	cases := []struct {
		pos          int
		line, column int
	}{
		{0, 1, 1},
		{3, 1, 4},
		{5, 2, 1},
		{9, 2, 5},
	}
	for _, c := range cases {
		line, column := GetLineAndColumn(src, c.pos)
		if line != c.line || column != c.column {
			t.Errorf("pos %d: expected %d:%d, got %d:%d", c.pos, c.line, c.column, line, column)
		}
	}
}

func TestGetContextLines(t *testing.T) {
	got := GetContextLines("(+ 1 2))", 1, 8)
	want := "  >    1 | (+ 1 2))\n" +
		strings.Repeat(" ", 18) + "^ unexpected here"
	if got != want {
		t.Errorf("expected\n%q\ngot\n%q", want, got)
	}
}

func TestGetContextLinesCountsRunes(t *testing.T) {
	// "é" is two bytes but one column
	src := "(é é))"
	line, col := GetLineAndColumn(src, strings.Index(src, "))")+1)
	if line != 1 || col != 6 {
		t.Fatalf("expected 1:6, got %d:%d", line, col)
	}

	got := GetContextLines(src, line, col)
	want := "  >    1 | (é é))\n" +
		strings.Repeat(" ", 16) + "^ unexpected here"
	if got != want {
		t.Errorf("expected\n%q\ngot\n%q", want, got)
	}
}
