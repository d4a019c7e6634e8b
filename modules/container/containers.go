package container

import (
	capa "github.com/your-org/modulecontainer/modules/capability-a"
	capb "github.com/your-org/modulecontainer/modules/capability-b"
	diag "github.com/your-org/modulecontainer/modules/diagnostics"
)

// Origin tags every signal emitted by an override in this package
const Origin = "ClassContainer"

// Compile-time substitutability checks
var (
	_ capa.CapabilityA = (*ClassAContainer)(nil)
	_ capb.CapabilityB = (*ClassBContainer)(nil)
	_ capa.CapabilityA = (*InheritedA)(nil)
	_ capb.CapabilityB = (*InheritedB)(nil)
)

// ClassAContainer overrides capability A
type ClassAContainer struct {
	capa.Base
}

// NewClassAContainer creates an override provider for capability A
func NewClassAContainer(emitter diag.Emitter) *ClassAContainer {
	return &ClassAContainer{Base: capa.NewBase(emitter)}
}

// MethodA replaces the base operation
func (c *ClassAContainer) MethodA() {
	c.Emit(Origin, "overridden methodA called")
}

// ClassBContainer overrides capability B
type ClassBContainer struct {
	capb.Base
}

// NewClassBContainer creates an override provider for capability B
func NewClassBContainer(emitter diag.Emitter) *ClassBContainer {
	return &ClassBContainer{Base: capb.NewBase(emitter)}
}

// MethodB replaces the base operation
func (c *ClassBContainer) MethodB() {
	c.Emit(Origin, "overridden methodB called")
}

// InheritedA extends capability A without overriding anything
type InheritedA struct {
	capa.Base
}

// NewInheritedA creates a provider that keeps the base behavior of A
func NewInheritedA(emitter diag.Emitter) *InheritedA {
	return &InheritedA{Base: capa.NewBase(emitter)}
}

// InheritedB extends capability B without overriding anything
type InheritedB struct {
	capb.Base
}

// NewInheritedB creates a provider that keeps the base behavior of B
func NewInheritedB(emitter diag.Emitter) *InheritedB {
	return &InheritedB{Base: capb.NewBase(emitter)}
}
