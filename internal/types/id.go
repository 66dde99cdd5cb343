// README: Opaque identifiers for sessions and bookings.
package types

import "github.com/google/uuid"

type ID string

func NewID() ID {
	return ID(uuid.NewString())
}

// Valid reports whether v parses as a UUID.
func (id ID) Valid() bool {
	_, err := uuid.Parse(string(id))
	return err == nil
}

func (id ID) String() string {
	return string(id)
}
