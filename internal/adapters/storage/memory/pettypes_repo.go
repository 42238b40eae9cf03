package memory

import (
	"context"
	"sort"
	"sync"

	"pet-clinic-types/internal/domain/pets"
	"pet-clinic-types/internal/domain/pettypes"

	"github.com/pkg/errors"
)

type PetTypeRepo struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]string
	// pets por type_id; solo se usan para el chequeo de delete
	petsByType map[int][]pets.Pet
}

func NewPetTypeRepo() *PetTypeRepo {
	return &PetTypeRepo{
		nextID:     1,
		byID:       make(map[int]string),
		petsByType: make(map[int][]pets.Pet),
	}
}

func (r *PetTypeRepo) FindByID(ctx context.Context, id int) (pettypes.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.byID[id]
	if !ok {
		return pettypes.PetType{}, pettypes.NewNotFoundError(pettypes.Kind, id)
	}
	return pettypes.Restore(id, name), nil
}

func (r *PetTypeRepo) FindByName(ctx context.Context, name string) (pettypes.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Igual que el SELECT sin ORDER BY: si hay repetidos gana el id menor.
	found := 0
	for id, n := range r.byID {
		if n == name && (found == 0 || id < found) {
			found = id
		}
	}
	if found == 0 {
		return pettypes.PetType{}, pettypes.NewNotFoundError(pettypes.Kind, name)
	}
	return pettypes.Restore(found, name), nil
}

func (r *PetTypeRepo) FindAll(ctx context.Context) ([]pettypes.PetType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pettypes.PetType, 0, len(r.byID))
	for id, name := range r.byID {
		out = append(out, pettypes.Restore(id, name))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		a, _ := out[i].ID()
		b, _ := out[j].ID()
		return a < b
	})
	return out, nil
}

func (r *PetTypeRepo) Save(ctx context.Context, t *pettypes.PetType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch s := t.State.(type) {
	case nil, pettypes.Transient:
		id := r.nextID
		if err := t.AssignID(id); err != nil {
			return err
		}
		r.nextID++
		r.byID[id] = t.Name
		return nil
	case pettypes.Persisted:
		// Como el UPDATE: si no existe, no hace nada.
		if _, ok := r.byID[s.ID]; ok {
			r.byID[s.ID] = t.Name
		}
		return nil
	default:
		return errors.Errorf("unknown pet type state %T", s)
	}
}

func (r *PetTypeRepo) Delete(ctx context.Context, t pettypes.PetType) error {
	id, ok := t.ID()
	if !ok {
		return pettypes.ErrTransient
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if n := len(r.petsByType[id]); n > 0 {
		return &pettypes.InUseError{ID: id, Dependents: n}
	}
	delete(r.byID, id)
	return nil
}

// AddPet registra un pet que referencia un tipo (dev/tests).
func (r *PetTypeRepo) AddPet(p pets.Pet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.petsByType[p.TypeID] = append(r.petsByType[p.TypeID], p)
}
