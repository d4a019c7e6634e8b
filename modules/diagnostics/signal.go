package diag

import (
	"fmt"

	"github.com/google/uuid"
)

// Signal is one diagnostic emission
type Signal struct {
	Origin    string    `json:"origin"`
	Operation string    `json:"operation"`
	Message   string    `json:"message"`
	Instance  uuid.UUID `json:"instance"`
}

// String renders the signal as a tagged console line
func (s Signal) String() string {
	return fmt.Sprintf("[%s] %s", s.Origin, s.Message)
}

// SameContent reports whether two signals carry the same marker,
// ignoring which instance emitted them
func (s Signal) SameContent(other Signal) bool {
	return s.Origin == other.Origin &&
		s.Operation == other.Operation &&
		s.Message == other.Message
}
