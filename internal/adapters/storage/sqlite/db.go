package sqlite

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// DriverName es el nombre con el que modernc.org/sqlite se registra.
const DriverName = "sqlite"

func init() {
	// sqlx no siempre conoce "sqlite" (solo "sqlite3"): placeholders "?".
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}

// Open abre una base sqlite (archivo o ":memory:").
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}

	db, err := sqlx.Open(DriverName, path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	// Una sola conexión: con ":memory:" cada conexión es otra base,
	// y sqlite serializa escrituras de todos modos.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite")
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "enable sqlite foreign keys")
	}

	return db, nil
}
