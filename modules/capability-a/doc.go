// Package capa defines capability A - a single operation, MethodA, that
// other modules can override.
//
// The package knows nothing about its implementers. Callers hold values as
// CapabilityA and the method set of the dynamic value decides what runs.
package capa
