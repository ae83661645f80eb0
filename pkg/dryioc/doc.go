// Package dryioc defines the declarative metadata model used to annotate
// types for automatic discovery and wiring by a dependency-injection
// container.
//
// The package is deliberately inert: it describes how a type advertises
// itself as a service (export descriptors), how instances are reused
// (reuse descriptors), how dependents request services (import
// descriptors), and one behavioral contract: the Condition evaluator,
// which decides whether an exported candidate applies to a given
// resolution request by inspecting the request's ancestor chain
// (RequestInfo).
//
// Discovery tooling and the container itself live elsewhere. They consume
// these descriptors as plain data; nothing in this package resolves
// services, manages lifetimes, or performs reflection-based scanning.
//
// All descriptor values are immutable after construction and safe to share
// across goroutines without synchronization.
package dryioc
