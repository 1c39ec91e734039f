package history

import (
	"github.com/lib/pq"
)

var postgresDialect = func() dialect {
	table := pq.QuoteIdentifier(tableName)
	return dialect{
		driver: "postgres",
		create: `CREATE TABLE IF NOT EXISTS ` + table + ` (
			id         BIGSERIAL PRIMARY KEY,
			input      TEXT    NOT NULL,
			output     TEXT    NOT NULL,
			failed     BOOLEAN NOT NULL,
			created_at BIGINT  NOT NULL
		)`,
		insert: `INSERT INTO ` + table + ` (input, output, failed, created_at) VALUES ($1, $2, $3, $4)`,
		recent: `SELECT input, output, failed, created_at FROM ` + table + ` ORDER BY id DESC LIMIT $1`,
	}
}()

func OpenPostgres(dsn string) (*SQLStore, error) {
	return openSQL(postgresDialect, dsn)
}
