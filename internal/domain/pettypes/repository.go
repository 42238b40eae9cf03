package pettypes

import "context"

type Repository interface {
	FindByID(ctx context.Context, id int) (PetType, error)
	FindByName(ctx context.Context, name string) (PetType, error)
	FindAll(ctx context.Context) ([]PetType, error)

	// Save inserta si t es Transient (y le asigna el id generado) o actualiza si es Persisted.
	Save(ctx context.Context, t *PetType) error

	// Delete borra el tipo solo si ninguna mascota lo referencia.
	Delete(ctx context.Context, t PetType) error
}
