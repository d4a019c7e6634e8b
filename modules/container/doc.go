// Package container is the consumer unit - the only place that knows about
// both capabilities.
//
// It imports capa and capb, supplies an override for each (ClassAContainer
// and ClassBContainer), and provides the Invoker that builds providers from
// the override registries and calls them through their capability types.
// The capability packages stay leaves; everything that ties them together
// lives here.
package container
