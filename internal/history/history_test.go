package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func appendAll(t *testing.T, s Store, inputs ...string) {
	t.Helper()
	for i, in := range inputs {
		e := Entry{
			Input:  in,
			Output: "out " + in,
			Failed: i%2 == 1,
			At:     time.Unix(int64(1000+i), 0),
		}
		if err := s.Append(context.Background(), e); err != nil {
			t.Fatalf("append %q: %v", in, err)
		}
	}
}

func checkInputs(t *testing.T, entries []Entry, expected ...string) {
	t.Helper()
	if len(entries) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(entries))
	}
	for i, e := range entries {
		if e.Input != expected[i] {
			t.Errorf("entry %d: expected %q, got %q", i, expected[i], e.Input)
		}
	}
}

func TestMemoryRecent(t *testing.T) {
	m := NewMemory(3)
	appendAll(t, m, "(+ 1 2)", "(- 5)", "(/ 1 0)", "()")

	all, _ := m.Recent(context.Background(), 10)
	checkInputs(t, all, "(- 5)", "(/ 1 0)", "()")

	last, _ := m.Recent(context.Background(), 2)
	checkInputs(t, last, "(/ 1 0)", "()")

	none, _ := m.Recent(context.Background(), 0)
	checkInputs(t, none)
}

func TestMemoryUnbounded(t *testing.T) {
	m := NewMemory(0)
	appendAll(t, m, "a", "b", "c")

	all, _ := m.Recent(context.Background(), -1)
	checkInputs(t, all, "a", "b", "c")
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open("sqlite:"+path, 0)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	appendAll(t, s, "(+ 1 2)", "(/ 1 0)", "(* 2 3)")

	entries, err := s.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	checkInputs(t, entries, "(/ 1 0)", "(* 2 3)")

	if !entries[0].Failed || entries[1].Failed {
		t.Errorf("failed flags not preserved: %+v", entries)
	}
	if entries[0].Output != "out (/ 1 0)" {
		t.Errorf("unexpected output %q", entries[0].Output)
	}
	if !entries[1].At.Equal(time.Unix(1002, 0)) {
		t.Errorf("unexpected timestamp %v", entries[1].At)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// entries survive reopening
	s, err = Open("sqlite:"+path, 0)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	entries, err = s.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	checkInputs(t, entries, "(+ 1 2)", "(/ 1 0)", "(* 2 3)")

	all, err := s.Recent(context.Background(), -1)
	if err != nil {
		t.Fatalf("recent all: %v", err)
	}
	checkInputs(t, all, "(+ 1 2)", "(/ 1 0)", "(* 2 3)")
}

func TestOpenRejectsUnknownScheme(t *testing.T) {
	_, err := Open("redis://localhost", 10)
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported DSN error, got %v", err)
	}

	if _, err := Open("sqlite:", 10); err == nil {
		t.Fatal("expected an error for an empty sqlite path")
	}
}

func TestOpenMemory(t *testing.T) {
	for _, dsn := range []string{"", "memory:"} {
		s, err := Open(dsn, 5)
		if err != nil {
			t.Fatalf("%q: %v", dsn, err)
		}
		if _, ok := s.(*Memory); !ok {
			t.Errorf("%q: expected a memory store, got %T", dsn, s)
		}
	}
}

func TestMySQLDSN(t *testing.T) {
	dsn, err := MySQLDSN("lispy:secret@tcp(db.local:3306)/calc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(dsn, "timeout=5s") {
		t.Errorf("expected a default dial timeout, got %q", dsn)
	}
	if !strings.Contains(dsn, "tcp(db.local:3306)/calc") {
		t.Errorf("address lost in %q", dsn)
	}

	dsn, err = MySQLDSN("lispy@tcp(db.local)/calc?timeout=1s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(dsn, "timeout=1s") {
		t.Errorf("explicit timeout overwritten: %q", dsn)
	}

	if _, err := MySQLDSN("not a dsn"); err == nil {
		t.Error("expected a parse error")
	}
}

func TestPostgresDialectQuotesTable(t *testing.T) {
	if !strings.Contains(postgresDialect.insert, `"lispy_history"`) {
		t.Errorf("table not quoted: %s", postgresDialect.insert)
	}
	if !strings.Contains(postgresDialect.recent, "$1") {
		t.Errorf("postgres placeholders expected: %s", postgresDialect.recent)
	}
}
