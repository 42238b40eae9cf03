package sqldb

import (
	"context"
	"database/sql"

	"pet-clinic-types/internal/domain/pets"
	"pet-clinic-types/internal/domain/pettypes"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Los textos de SQL y los nombres de parámetros se comparten con otros
// consumidores de la tabla: no cambiarlos.
const (
	SQLFindByName = "SELECT id, name FROM types WHERE name = :name"
	SQLFindByID   = "SELECT id, name FROM types WHERE id = :id"
	SQLFindAll    = "SELECT id, name FROM types ORDER BY name"
	SQLUpdate     = "UPDATE types SET name=:name WHERE id=:id"
	SQLDependents = "SELECT pets.id, name, birth_date, type_id, owner_id FROM pets WHERE type_id=:id"
	SQLDelete     = "DELETE FROM types WHERE id=:id"
)

type petTypeRow struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type petRow struct {
	ID        int           `db:"id"`
	Name      string        `db:"name"`
	BirthDate sql.NullTime  `db:"birth_date"`
	TypeID    int           `db:"type_id"`
	OwnerID   sql.NullInt64 `db:"owner_id"`
}

type PetTypeRepo struct {
	exec   NamedExecutor
	insert KeyInserter
}

func NewPetTypeRepo(exec NamedExecutor, insert KeyInserter) *PetTypeRepo {
	return &PetTypeRepo{exec: exec, insert: insert}
}

// NewPetTypeRepoFromDB arma el repo con los colaboradores por defecto sobre sqlx.
func NewPetTypeRepoFromDB(db *sqlx.DB) *PetTypeRepo {
	exec := NewExecutor(db)
	return NewPetTypeRepo(exec, NewTableInserter(exec, "types", "id", "name"))
}

func (r *PetTypeRepo) FindByName(ctx context.Context, name string) (pettypes.PetType, error) {
	var row petTypeRow
	if err := r.exec.Get(ctx, &row, SQLFindByName, map[string]any{"name": name}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pettypes.PetType{}, pettypes.NewNotFoundError(pettypes.Kind, name)
		}
		return pettypes.PetType{}, err
	}
	return pettypes.Restore(row.ID, row.Name), nil
}

func (r *PetTypeRepo) FindByID(ctx context.Context, id int) (pettypes.PetType, error) {
	var row petTypeRow
	if err := r.exec.Get(ctx, &row, SQLFindByID, map[string]any{"id": id}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pettypes.PetType{}, pettypes.NewNotFoundError(pettypes.Kind, id)
		}
		return pettypes.PetType{}, err
	}
	return pettypes.Restore(row.ID, row.Name), nil
}

func (r *PetTypeRepo) FindAll(ctx context.Context) ([]pettypes.PetType, error) {
	var rows []petTypeRow
	if err := r.exec.Select(ctx, &rows, SQLFindAll, nil); err != nil {
		return nil, err
	}

	out := make([]pettypes.PetType, 0, len(rows))
	for _, row := range rows {
		out = append(out, pettypes.Restore(row.ID, row.Name))
	}
	return out, nil
}

// Save: insert si es Transient (y escribe el id generado en t), update si es Persisted.
// Nunca los dos. Un update que no afecta filas no se considera error acá.
func (r *PetTypeRepo) Save(ctx context.Context, t *pettypes.PetType) error {
	switch s := t.State.(type) {
	case nil, pettypes.Transient:
		key, err := r.insert.InsertReturningKey(ctx, petTypeRow{Name: t.Name})
		if err != nil {
			return err
		}
		return t.AssignID(int(key))
	case pettypes.Persisted:
		_, err := r.exec.Exec(ctx, SQLUpdate, petTypeRow{ID: s.ID, Name: t.Name})
		return err
	default:
		return errors.Errorf("unknown pet type state %T", s)
	}
}

// Delete no borra si hay pets con ese type_id.
// Ojo: consulta y delete van sin transacción; un pet insertado entre ambos no se detecta.
func (r *PetTypeRepo) Delete(ctx context.Context, t pettypes.PetType) error {
	id, ok := t.ID()
	if !ok {
		return pettypes.ErrTransient
	}

	deps, err := r.Dependents(ctx, id)
	if err != nil {
		return err
	}
	if len(deps) > 0 {
		return &pettypes.InUseError{ID: id, Dependents: len(deps)}
	}

	_, err = r.exec.Exec(ctx, SQLDelete, map[string]any{"id": id})
	return err
}

// Dependents devuelve los pets que referencian el tipo.
func (r *PetTypeRepo) Dependents(ctx context.Context, typeID int) ([]pets.Pet, error) {
	var rows []petRow
	if err := r.exec.Select(ctx, &rows, SQLDependents, map[string]any{"id": typeID}); err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		p := pets.Pet{
			ID:      row.ID,
			Name:    row.Name,
			TypeID:  row.TypeID,
			OwnerID: int(row.OwnerID.Int64),
		}
		if row.BirthDate.Valid {
			bd := row.BirthDate.Time
			p.BirthDate = &bd
		}
		out = append(out, p)
	}
	return out, nil
}
