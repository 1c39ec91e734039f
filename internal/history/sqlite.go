package history

import (
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

var sqliteDialect = dialect{
	driver: "sqlite3",
	create: `CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		input      TEXT    NOT NULL,
		output     TEXT    NOT NULL,
		failed     BOOLEAN NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	insert: `INSERT INTO ` + tableName + ` (input, output, failed, created_at) VALUES (?, ?, ?, ?)`,
	recent: `SELECT input, output, failed, created_at FROM ` + tableName + ` ORDER BY id DESC LIMIT ?`,
}

func OpenSQLite(path string) (*SQLStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite history: empty path")
	}
	return openSQL(sqliteDialect, path)
}
