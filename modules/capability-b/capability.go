package capb

import (
	"github.com/google/uuid"

	diag "github.com/your-org/modulecontainer/modules/diagnostics"
)

const (
	// Origin tags signals produced by the base operation
	Origin = "ModuleB"

	// Operation is the name of the capability's operation
	Operation = "methodB"
)

// CapabilityB is implemented by anything that can run methodB
type CapabilityB interface {
	ID() uuid.UUID
	MethodB()
}

// Base carries the identity and emitter every CapabilityB implementation
// needs. Embed it and define MethodB to override the operation.
type Base struct {
	id      uuid.UUID
	emitter diag.Emitter
}

var _ CapabilityB = Base{}

// NewBase creates a base with a fresh identity
func NewBase(emitter diag.Emitter) Base {
	return Base{
		id:      uuid.New(),
		emitter: diag.OrDiscard(emitter),
	}
}

// ID returns the instance identity
func (b Base) ID() uuid.UUID { return b.id }

// Emitter returns the emitter overrides should report to
func (b Base) Emitter() diag.Emitter { return diag.OrDiscard(b.emitter) }

// MethodB is the base behavior, reached only by implementations that embed
// Base without overriding it
func (b Base) MethodB() {
	b.Emit(Origin, "methodB called")
}

// Emit sends a signal for this capability's operation on behalf of origin
func (b Base) Emit(origin, message string) {
	b.Emitter().Emit(diag.Signal{
		Origin:    origin,
		Operation: Operation,
		Message:   message,
		Instance:  b.id,
	})
}
