package pettypes

import "strings"

// State indica si un PetType ya tiene fila en la tabla types.
// Solo hay dos variantes: Transient y Persisted.
type State interface {
	isState()
}

// Transient: todavía no se insertó, no tiene id.
type Transient struct{}

// Persisted: existe en la tabla con el id generado al insertar.
type Persisted struct {
	ID int
}

func (Transient) isState() {}
func (Persisted) isState() {}

// PetType es una categoría de mascota (cat, dog, hamster...).
type PetType struct {
	State State
	Name  string
}

// New crea un PetType sin persistir.
func New(name string) PetType {
	return PetType{State: Transient{}, Name: name}
}

// Restore reconstruye un PetType leído de una fila.
func Restore(id int, name string) PetType {
	return PetType{State: Persisted{ID: id}, Name: name}
}

func (t PetType) ID() (int, bool) {
	p, ok := t.State.(Persisted)
	if !ok {
		return 0, false
	}
	return p.ID, true
}

// IsNew trata un State nil igual que Transient (zero value de PetType).
func (t PetType) IsNew() bool {
	_, ok := t.ID()
	return !ok
}

// AssignID pasa un PetType Transient a Persisted.
// El id se asigna una sola vez: si ya estaba persistido devuelve ErrAlreadyPersisted.
func (t *PetType) AssignID(id int) error {
	if !t.IsNew() {
		return ErrAlreadyPersisted
	}
	t.State = Persisted{ID: id}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}
