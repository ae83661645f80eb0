package dryioc

import "reflect"

// Condition decides whether an exported candidate is eligible for a given
// resolution request. Evaluate returning false excludes the candidate
// without being a failure; "no eligible export" is reported by the
// container, not by the condition.
//
// Implementations must be pure functions of the chain: read-only, no side
// effects, deterministic for a given chain shape. The container may
// evaluate the same condition concurrently for unrelated requests.
type Condition interface {
	Evaluate(request *RequestInfo) bool
}

// ConditionFunc adapts an ordinary function to the Condition interface.
type ConditionFunc func(request *RequestInfo) bool

// Evaluate calls f(request).
func (f ConditionFunc) Evaluate(request *RequestInfo) bool {
	return f(request)
}

// AtResolutionRoot is eligible only when the candidate is requested at the
// top level, with no enclosing request.
type AtResolutionRoot struct{}

// Evaluate implements Condition.
func (AtResolutionRoot) Evaluate(request *RequestInfo) bool {
	return request.IsRoot()
}

// ParentServiceKeyEquals is eligible only when the immediate parent
// request carries the given service key.
type ParentServiceKeyEquals struct {
	Key any
}

// Evaluate implements Condition.
func (c ParentServiceKeyEquals) Evaluate(request *RequestInfo) bool {
	parent, ok := request.Parent()
	if !ok {
		return false
	}
	return parent.ServiceKey() == c.Key
}

// ParentImplementationIs is eligible only when the immediate parent
// request resolved to the given implementation type.
type ParentImplementationIs struct {
	Type reflect.Type
}

// Evaluate implements Condition.
func (c ParentImplementationIs) Evaluate(request *RequestInfo) bool {
	parent, ok := request.Parent()
	if !ok {
		return false
	}
	return parent.ImplementationType() == c.Type
}

// AncestorServiceTypeIs is eligible when any enclosing request, however
// deep, asked for the given service type. The current request itself does
// not count.
type AncestorServiceTypeIs struct {
	Type reflect.Type
}

// Evaluate implements Condition.
func (c AncestorServiceTypeIs) Evaluate(request *RequestInfo) bool {
	for node := range request.Chain() {
		if node == request {
			continue
		}
		if node.ServiceType() == c.Type {
			return true
		}
	}
	return false
}
