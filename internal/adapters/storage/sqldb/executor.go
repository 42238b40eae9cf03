package sqldb

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// NamedExecutor ejecuta SQL con parámetros nombrados (:name, :id).
// arg puede ser un map[string]any o un struct con tags `db`.
type NamedExecutor interface {
	Get(ctx context.Context, dest any, query string, arg any) error
	Select(ctx context.Context, dest any, query string, arg any) error
	Exec(ctx context.Context, query string, arg any) (int64, error)
}

// SQLXExecutor resuelve los parámetros con sqlx.Named y los reescribe
// al placeholder del driver ($1 en pgx, ? en sqlite).
type SQLXExecutor struct {
	db *sqlx.DB
}

func NewExecutor(db *sqlx.DB) *SQLXExecutor {
	return &SQLXExecutor{db: db}
}

func (e *SQLXExecutor) Get(ctx context.Context, dest any, query string, arg any) error {
	q, args, err := e.bind(query, arg)
	if err != nil {
		return err
	}
	// sql.ErrNoRows sale sin envolver: el repo lo traduce.
	return e.db.GetContext(ctx, dest, q, args...)
}

func (e *SQLXExecutor) Select(ctx context.Context, dest any, query string, arg any) error {
	q, args, err := e.bind(query, arg)
	if err != nil {
		return err
	}
	return e.db.SelectContext(ctx, dest, q, args...)
}

func (e *SQLXExecutor) Exec(ctx context.Context, query string, arg any) (int64, error) {
	q, args, err := e.bind(query, arg)
	if err != nil {
		return 0, err
	}
	res, err := e.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (e *SQLXExecutor) bind(query string, arg any) (string, []any, error) {
	if arg == nil {
		arg = map[string]any{}
	}
	q, args, err := sqlx.Named(query, arg)
	if err != nil {
		return "", nil, errors.Wrapf(err, "bind named params for %q", query)
	}
	return e.db.Rebind(q), args, nil
}
