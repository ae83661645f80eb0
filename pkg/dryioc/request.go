package dryioc

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// RequestInfo is one step of an in-progress resolution, backward-linked to
// the step that caused it. Nodes are immutable: extending a chain means
// building a new node whose parent is the previous current node, never
// mutating an existing one. The container builds chains strictly outward
// from a root, so a chain is always finite and acyclic.
//
// Chains are caller-owned; concurrent resolutions extend independent
// chains and need no locking.
type RequestInfo struct {
	parent             *RequestInfo
	serviceType        reflect.Type
	serviceKey         any
	implementationType reflect.Type
	decoratorOrWrapper bool
}

// NewRootRequest creates the chain node for a top-level resolution with no
// enclosing request. A nil serviceKey means the request is unkeyed.
func NewRootRequest(serviceType reflect.Type, serviceKey any) *RequestInfo {
	return &RequestInfo{
		serviceType: serviceType,
		serviceKey:  serviceKey,
	}
}

// Push creates the node for a nested resolution step with r as its parent.
// r is not modified. implementationType may be nil while the container has
// not picked a candidate yet; decoratorOrWrapper marks steps introduced by
// decorator or wrapper application rather than ordinary dependencies.
func (r *RequestInfo) Push(serviceType reflect.Type, serviceKey any, implementationType reflect.Type, decoratorOrWrapper bool) *RequestInfo {
	return &RequestInfo{
		parent:             r,
		serviceType:        serviceType,
		serviceKey:         serviceKey,
		implementationType: implementationType,
		decoratorOrWrapper: decoratorOrWrapper,
	}
}

// ServiceType returns the contract type requested at this step.
func (r *RequestInfo) ServiceType() reflect.Type {
	return r.serviceType
}

// ServiceKey returns the service key of this step, or nil if unkeyed.
func (r *RequestInfo) ServiceKey() any {
	return r.serviceKey
}

// ImplementationType returns the implementation chosen for this step, or
// nil if none has been chosen.
func (r *RequestInfo) ImplementationType() reflect.Type {
	return r.implementationType
}

// IsDecoratorOrWrapper reports whether this step was introduced by
// decorator or wrapper application.
func (r *RequestInfo) IsDecoratorOrWrapper() bool {
	return r.decoratorOrWrapper
}

// Parent returns the enclosing request and whether one exists.
func (r *RequestInfo) Parent() (*RequestInfo, bool) {
	return r.parent, r.parent != nil
}

// IsRoot reports whether this node is the root resolution request.
func (r *RequestInfo) IsRoot() bool {
	return r.parent == nil
}

// Depth returns the number of ancestors above this node. A root node has
// depth zero.
func (r *RequestInfo) Depth() int {
	depth := 0
	for node := r.parent; node != nil; node = node.parent {
		depth++
	}
	return depth
}

// Chain returns a lazy sequence over the chain from this node to the root,
// most specific request first. Each call to the returned sequence starts
// fresh from this node, so it can be ranged over repeatedly.
func (r *RequestInfo) Chain() iter.Seq[*RequestInfo] {
	return func(yield func(*RequestInfo) bool) {
		for node := r; node != nil; node = node.parent {
			if !yield(node) {
				return
			}
		}
	}
}

// String renders the chain root-first for diagnostics, e.g.
// "IService -> IRepository(key=primary)".
func (r *RequestInfo) String() string {
	var steps []string
	for node := range r.Chain() {
		steps = append(steps, node.describe())
	}
	// Collected current-first; reverse for a root-first reading order.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return strings.Join(steps, " -> ")
}

func (r *RequestInfo) describe() string {
	name := "<nil>"
	if r.serviceType != nil {
		name = r.serviceType.String()
	}
	if r.serviceKey != nil {
		return fmt.Sprintf("%s(key=%v)", name, r.serviceKey)
	}
	return name
}
