package history

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Entry is one evaluated line.
type Entry struct {
	Input  string
	Output string
	Failed bool
	At     time.Time
}

// Store persists REPL history.
type Store interface {
	Append(ctx context.Context, e Entry) error
	// Recent returns at most n entries, oldest first. A negative n returns every
	// entry the store keeps.
	Recent(ctx context.Context, n int) ([]Entry, error)
	Close() error
}

// Open picks a store from the DSN scheme:
//
//	""  or memory:              in-process only
//	sqlite:<path>               github.com/mattn/go-sqlite3
//	mysql:<user:pass@tcp(h)/db> github.com/go-sql-driver/mysql
//	postgres://...              github.com/lib/pq
func Open(dsn string, size int) (Store, error) {
	var (
		s   *SQLStore
		err error
	)

	switch {
	case dsn == "" || dsn == "memory:":
		return NewMemory(size), nil
	case strings.HasPrefix(dsn, "sqlite:"):
		s, err = OpenSQLite(strings.TrimPrefix(dsn, "sqlite:"))
	case strings.HasPrefix(dsn, "mysql:"):
		s, err = OpenMySQL(strings.TrimPrefix(dsn, "mysql:"))
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		s, err = OpenPostgres(dsn)
	default:
		return nil, fmt.Errorf("unsupported history DSN %q", dsn)
	}

	if err != nil {
		return nil, err
	}
	return s, nil
}
