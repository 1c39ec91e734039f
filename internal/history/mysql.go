package history

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

var mysqlDialect = dialect{
	driver: "mysql",
	create: `CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		input      TEXT    NOT NULL,
		output     TEXT    NOT NULL,
		failed     BOOLEAN NOT NULL,
		created_at BIGINT  NOT NULL
	)`,
	insert: `INSERT INTO ` + tableName + ` (input, output, failed, created_at) VALUES (?, ?, ?, ?)`,
	recent: `SELECT input, output, failed, created_at FROM ` + tableName + ` ORDER BY id DESC LIMIT ?`,
}

const mysqlDialTimeout = 5 * time.Second

// MySQLDSN validates a go-sql-driver DSN and fills in a dial timeout when none is set.
func MySQLDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("mysql history: %w", err)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = mysqlDialTimeout
	}
	return cfg.FormatDSN(), nil
}

func OpenMySQL(dsn string) (*SQLStore, error) {
	normalized, err := MySQLDSN(dsn)
	if err != nil {
		return nil, err
	}
	return openSQL(mysqlDialect, normalized)
}
