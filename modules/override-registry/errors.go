package registry

import "errors"

var (
	// ErrNameRequired indicates an empty provider name
	ErrNameRequired = errors.New("provider name is required")

	// ErrNilFactory indicates a registration without a factory
	ErrNilFactory = errors.New("provider factory cannot be nil")

	// ErrProviderNotFound indicates no provider is registered under the name
	ErrProviderNotFound = errors.New("provider not found")
)

// IsNotFound returns true if the error is ErrProviderNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProviderNotFound)
}
