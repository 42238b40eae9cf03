package pettypes

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInUse            = errors.New("pet type in use")
	ErrInvalidInput     = errors.New("invalid input")
	ErrTransient        = errors.New("pet type is not persisted")
	ErrAlreadyPersisted = errors.New("pet type already has an id")
)

// Kind es el nombre de entidad que viaja en NotFoundError.
const Kind = "PetType"

// NotFoundError lleva la entidad y la clave buscada, para diagnóstico.
// errors.Is(err, ErrNotFound) es true.
type NotFoundError struct {
	Kind string
	Key  any
}

func NewNotFoundError(kind string, key any) *NotFoundError {
	return &NotFoundError{Kind: kind, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InUseError: el delete no se ejecutó porque hay pets que apuntan al tipo.
type InUseError struct {
	ID         int
	Dependents int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("pet type %d in use by %d pet(s)", e.ID, e.Dependents)
}

func (e *InUseError) Is(target error) bool {
	return target == ErrInUse
}
