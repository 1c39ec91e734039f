package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"time"
)

const tableName = "lispy_history"

// dialect holds the statements that differ between drivers.
type dialect struct {
	driver string
	create string
	insert string
	recent string
}

// SQLStore is a Store over database/sql, shared by every SQL backend.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

func openSQL(d dialect, dsn string) (*SQLStore, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s history: %w", d.driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s history: %w", d.driver, err)
	}

	if _, err := db.ExecContext(ctx, d.create); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating %s history table: %w", d.driver, err)
	}

	slog.Debug("history store opened", slog.String("driver", d.driver))
	return &SQLStore{db: db, dialect: d}, nil
}

func (s *SQLStore) Append(ctx context.Context, e Entry) error {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.db.ExecContext(ctx, s.dialect.insert, e.Input, e.Output, e.Failed, at.UnixNano())
	if err != nil {
		return fmt.Errorf("appending history: %w", err)
	}
	return nil
}

// Recent returns at most n entries, oldest first; a negative n returns them all.
func (s *SQLStore) Recent(ctx context.Context, n int) ([]Entry, error) {
	limit := int64(n)
	if n < 0 {
		limit = math.MaxInt64
	}
	rows, err := s.db.QueryContext(ctx, s.dialect.recent, limit)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var nanos int64
		if err := rows.Scan(&e.Input, &e.Output, &e.Failed, &nanos); err != nil {
			return nil, fmt.Errorf("reading history: %w", err)
		}
		e.At = time.Unix(0, nanos)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	// the query returns newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
