package container

import "errors"

var (
	// ErrUnknownCapability indicates a step names neither capability
	ErrUnknownCapability = errors.New("unknown capability")

	// ErrInvalidStep indicates a step that cannot be parsed
	ErrInvalidStep = errors.New("invalid step")
)

// IsUnknownCapability returns true if the error is ErrUnknownCapability
func IsUnknownCapability(err error) bool {
	return errors.Is(err, ErrUnknownCapability)
}

// IsInvalidStep returns true if the error is ErrInvalidStep
func IsInvalidStep(err error) bool {
	return errors.Is(err, ErrInvalidStep)
}
