package sqldb

import (
	"context"
	"fmt"
	"strings"
)

// KeyInserter inserta una fila y devuelve la clave generada por la base.
type KeyInserter interface {
	InsertReturningKey(ctx context.Context, arg any) (int64, error)
}

// TableInserter arma un INSERT ... RETURNING <key> para una tabla y columnas fijas.
// Postgres y sqlite (>= 3.35) soportan RETURNING.
type TableInserter struct {
	exec  NamedExecutor
	query string
}

func NewTableInserter(exec NamedExecutor, table, keyColumn string, columns ...string) *TableInserter {
	params := make([]string, len(columns))
	for i, c := range columns {
		params[i] = ":" + c
	}
	return &TableInserter{
		exec: exec,
		query: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			table, strings.Join(columns, ", "), strings.Join(params, ", "), keyColumn),
	}
}

func (i *TableInserter) InsertReturningKey(ctx context.Context, arg any) (int64, error) {
	var key int64
	if err := i.exec.Get(ctx, &key, i.query, arg); err != nil {
		return 0, err
	}
	return key, nil
}
