//go:build integration

package sqldb_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pet-clinic-types/internal/adapters/storage/postgres"
	"pet-clinic-types/internal/adapters/storage/sqldb"
	"pet-clinic-types/internal/domain/pettypes"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var pgSchema = []string{
	`CREATE TABLE IF NOT EXISTS types (
		id   SERIAL PRIMARY KEY,
		name VARCHAR(80)
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id         SERIAL PRIMARY KEY,
		name       VARCHAR(30),
		birth_date DATE,
		type_id    INTEGER NOT NULL REFERENCES types (id),
		owner_id   INTEGER
	)`,
}

// setupPostgres levanta un Postgres en testcontainers y devuelve la conexión.
func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "petclinic",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=petclinic sslmode=disable", host, port.Port())

	var db *sqlx.DB
	require.Eventually(t, func() bool {
		db, err = postgres.Open(ctx, dsn)
		return err == nil
	}, 30*time.Second, 500*time.Millisecond, "postgres never became reachable")
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range pgSchema {
		_, err := db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}
	return db
}

func TestPostgres_PetTypeLifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupPostgres(t)
	repo := sqldb.NewPetTypeRepoFromDB(db)

	name := "iguana-" + uuid.NewString()[:8]
	pt := pettypes.New(name)
	require.NoError(t, repo.Save(ctx, &pt))
	id, ok := pt.ID()
	require.True(t, ok)

	got, err := repo.FindByName(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, pt, got)

	pt.Name = name + "-renamed"
	require.NoError(t, repo.Save(ctx, &pt))
	got, err = repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pt.Name, got.Name)

	_, err = db.ExecContext(ctx,
		"INSERT INTO pets (name, birth_date, type_id, owner_id) VALUES ($1, $2, $3, $4)",
		"Leo", time.Date(2020, 9, 7, 0, 0, 0, 0, time.UTC), id, 1)
	require.NoError(t, err)

	deps, err := repo.Dependents(ctx, id)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	require.NotNil(t, deps[0].BirthDate)
	assert.Equal(t, 2020, deps[0].BirthDate.Year())

	assert.True(t, errors.Is(repo.Delete(ctx, pt), pettypes.ErrInUse))

	_, err = db.ExecContext(ctx, "DELETE FROM pets WHERE type_id = $1", id)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, pt))

	_, err = repo.FindByID(ctx, id)
	assert.True(t, errors.Is(err, pettypes.ErrNotFound))
}
