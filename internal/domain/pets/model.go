package pets

import "time"

// Pet representa una fila de la tabla pets.
// Este servicio solo la lee: type_id es la FK que bloquea el borrado de un tipo.
type Pet struct {
	ID        int
	Name      string
	BirthDate *time.Time
	TypeID    int
	OwnerID   int
}
