// Package capb defines capability B - a single operation, MethodB, kept
// apart from capability A so that either can change or be overridden
// without the other noticing.
//
// Like capa, it is a leaf: it declares the contract and an embeddable Base,
// and leaves every override to the consumer module.
package capb
