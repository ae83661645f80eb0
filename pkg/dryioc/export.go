package dryioc

import "reflect"

// ExportSpec is the closed set of export descriptor variants. A type may
// carry more than one variant (e.g. MultiExport plus DecoratorExport);
// resolving conflicting combinations is the discovery/container's concern,
// not the model's.
type ExportSpec interface {
	exportSpec()
}

// TypeOf returns the reflect.Type for T. Unlike reflect.TypeOf on a value,
// it works for interface types, which is what contract types usually are:
//
//	dryioc.Export{ContractType: dryioc.TypeOf[UserStore]()}
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Export declares a default single-contract export. A nil ContractType
// means the annotated type itself is the contract; an empty ContractName
// means the export is unnamed.
type Export struct {
	ContractType reflect.Type
	ContractName string
}

func (Export) exportSpec() {}

// KeyedExport declares an export matched by an exact key. The key may be
// any comparable value; a string key also serves as a name-based match.
// When a contract name is present alongside a key, the name takes
// precedence in matching.
type KeyedExport struct {
	ContractKey  any
	ContractType reflect.Type
}

func (KeyedExport) exportSpec() {}

// MultiExport exports every implemented contract type of the annotated
// type, minus the Except set. IncludeNonPublic additionally exposes
// unexported contract types.
type MultiExport struct {
	ContractKey      any
	ContractName     string
	Except           []reflect.Type
	IncludeNonPublic bool
}

func (MultiExport) exportSpec() {}

// EffectiveContracts returns the implemented contract types minus the
// Except set, preserving order. The implemented set is computed by the
// discovery mechanism; this model only applies the exclusion. A type in
// Except is never included, even if implemented through multiple
// interfaces.
func (m MultiExport) EffectiveContracts(implemented []reflect.Type) []reflect.Type {
	if len(m.Except) == 0 {
		out := make([]reflect.Type, len(implemented))
		copy(out, implemented)
		return out
	}

	excluded := make(map[reflect.Type]struct{}, len(m.Except))
	for _, t := range m.Except {
		excluded[t] = struct{}{}
	}

	out := make([]reflect.Type, 0, len(implemented))
	for _, t := range implemented {
		if _, skip := excluded[t]; skip {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FactoryExport marks the type as a factory whose methods produce services
// rather than the type being a service itself.
type FactoryExport struct{}

func (FactoryExport) exportSpec() {}

// UnspecifiedWrappedArg is the WrapperExport arg index meaning "not
// specified"; the container then infers the wrapped type position.
const UnspecifiedWrappedArg = -1

// WrapperExport marks a generic wrapper service. WrappedArgIndex names
// which generic argument position holds the wrapped service type;
// UnspecifiedWrappedArg leaves it to the container to infer.
type WrapperExport struct {
	WrappedArgIndex                int
	AlwaysWrapsRequiredServiceType bool
}

func (WrapperExport) exportSpec() {}

// NewWrapperExport returns a WrapperExport with an unspecified wrapped
// argument position.
func NewWrapperExport() WrapperExport {
	return WrapperExport{WrappedArgIndex: UnspecifiedWrappedArg}
}

// DecoratorExport marks the export as decorating exports of the same
// contract. Decorated exports are matched by ContractName first, then by
// ContractKey. Decoration changes how the candidate is applied, not how it
// is matched.
type DecoratorExport struct {
	ContractName string
	ContractKey  any
}

func (DecoratorExport) exportSpec() {}

// OpenResolutionScope marks an export whose injection opens a new
// resolution-scope boundary for its own dependency subtree.
type OpenResolutionScope struct{}

func (OpenResolutionScope) exportSpec() {}

// ResolutionRoot marks the export as a valid top-level resolution entry
// point.
type ResolutionRoot struct{}

func (ResolutionRoot) exportSpec() {}
