package dryioc

import "fmt"

// ReuseKind represents the lifetime/scope policy a service can request
type ReuseKind int

const (
	// ReuseTransient creates a new instance on every resolution.
	ReuseTransient ReuseKind = iota

	// ReuseSingleton creates one instance shared for the container lifetime.
	ReuseSingleton

	// ReuseCurrentScope shares one instance per ambient scope. The scope may
	// be named; an empty name matches the unnamed ambient scope.
	ReuseCurrentScope

	// ReuseResolutionScope shares one instance within a single resolution
	// call. It never carries a scope name.
	ReuseResolutionScope
)

// String returns the string representation of the reuse kind
func (k ReuseKind) String() string {
	switch k {
	case ReuseTransient:
		return "transient"
	case ReuseSingleton:
		return "singleton"
	case ReuseCurrentScope:
		return "current_scope"
	case ReuseResolutionScope:
		return "resolution_scope"
	default:
		return "unknown"
	}
}

// ParseReuseKind converts string to ReuseKind
func ParseReuseKind(s string) (ReuseKind, error) {
	switch s {
	case "transient":
		return ReuseTransient, nil
	case "singleton":
		return ReuseSingleton, nil
	case "current_scope":
		return ReuseCurrentScope, nil
	case "resolution_scope":
		return ReuseResolutionScope, nil
	default:
		return 0, fmt.Errorf("unknown reuse kind: %s", s)
	}
}

// Reserved scope names for the CurrentScope conveniences. These are
// process-wide string conventions, not enforced uniqueness constraints; a
// caller may reuse them for an unrelated ambient scope at their own risk.
const (
	// WebRequestScopeName is the agreed token for a per-web-request scope.
	WebRequestScopeName = "WebRequestScope"

	// ThreadScopeName is the agreed token for a per-worker scope.
	ThreadScopeName = "ThreadScope"
)

// Reuse describes the lifetime policy attached to an exported service.
// ScopeName is meaningful only when Kind is ReuseCurrentScope; the empty
// string names the unnamed ambient scope. Transient and Singleton ignore
// any scope name.
type Reuse struct {
	Kind      ReuseKind
	ScopeName string
}

// TransientReuse returns a reuse policy creating a new instance per resolution.
func TransientReuse() Reuse {
	return Reuse{Kind: ReuseTransient}
}

// SingletonReuse returns a reuse policy sharing a single instance.
func SingletonReuse() Reuse {
	return Reuse{Kind: ReuseSingleton}
}

// ScopedReuse returns a CurrentScope policy bound to the named ambient
// scope. An empty name binds to the unnamed ambient scope.
func ScopedReuse(scopeName string) Reuse {
	return Reuse{Kind: ReuseCurrentScope, ScopeName: scopeName}
}

// ResolutionScopeReuse returns a policy scoped to the active resolution call.
func ResolutionScopeReuse() Reuse {
	return Reuse{Kind: ReuseResolutionScope}
}

// WebRequestReuse is ScopedReuse with the reserved web-request scope name.
func WebRequestReuse() Reuse {
	return ScopedReuse(WebRequestScopeName)
}

// ThreadReuse is ScopedReuse with the reserved thread scope name.
func ThreadReuse() Reuse {
	return ScopedReuse(ThreadScopeName)
}

// ScopedTo returns the scope name the policy binds to and whether the kind
// uses one at all. Only CurrentScope policies report true.
func (r Reuse) ScopedTo() (string, bool) {
	if r.Kind == ReuseCurrentScope {
		return r.ScopeName, true
	}
	return "", false
}

// String returns a human-readable form for diagnostics
func (r Reuse) String() string {
	if name, ok := r.ScopedTo(); ok && name != "" {
		return fmt.Sprintf("%s(%s)", r.Kind, name)
	}
	return r.Kind.String()
}
