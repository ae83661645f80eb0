package dryioc

import (
	"io"
	"reflect"
	"testing"
)

type iFoo interface{ Foo() }
type iBar interface{ Bar() }

func TestEffectiveContractsExcludes(t *testing.T) {
	// Foo implements {iFoo, iBar, io.Closer}; exporting all contracts
	// except io.Closer must yield {iFoo, iBar}.
	implemented := []reflect.Type{TypeOf[iFoo](), TypeOf[iBar](), TypeOf[io.Closer]()}
	export := MultiExport{Except: []reflect.Type{TypeOf[io.Closer]()}}

	got := export.EffectiveContracts(implemented)
	want := []reflect.Type{TypeOf[iFoo](), TypeOf[iBar]()}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected effective contracts %v, got %v", want, got)
	}
}

func TestEffectiveContractsExcludesDuplicates(t *testing.T) {
	// An excluded type never makes it through, even when the implemented
	// set reports it more than once.
	implemented := []reflect.Type{TypeOf[io.Closer](), TypeOf[iFoo](), TypeOf[io.Closer]()}
	export := MultiExport{Except: []reflect.Type{TypeOf[io.Closer]()}}

	got := export.EffectiveContracts(implemented)
	for _, typ := range got {
		if typ == TypeOf[io.Closer]() {
			t.Fatal("Excluded type leaked into the effective contract set")
		}
	}
	if len(got) != 1 || got[0] != TypeOf[iFoo]() {
		t.Errorf("Expected only iFoo, got %v", got)
	}
}

func TestEffectiveContractsWithoutExcept(t *testing.T) {
	implemented := []reflect.Type{TypeOf[iFoo](), TypeOf[iBar]()}
	export := MultiExport{}

	got := export.EffectiveContracts(implemented)
	if !reflect.DeepEqual(got, implemented) {
		t.Errorf("Expected all implemented contracts, got %v", got)
	}

	// The result must be a copy, not an alias of the input.
	got[0] = TypeOf[io.Closer]()
	if implemented[0] != TypeOf[iFoo]() {
		t.Error("EffectiveContracts must not alias the caller's slice")
	}
}

func TestTypeOfInterface(t *testing.T) {
	typ := TypeOf[io.Closer]()
	if typ.Kind() != reflect.Interface {
		t.Errorf("Expected interface kind, got %v", typ.Kind())
	}
	if typ.Name() != "Closer" {
		t.Errorf("Expected Closer, got %s", typ.Name())
	}
}

func TestNewWrapperExportDefaults(t *testing.T) {
	wrapper := NewWrapperExport()
	if wrapper.WrappedArgIndex != UnspecifiedWrappedArg {
		t.Errorf("Expected unspecified wrapped arg index, got %d", wrapper.WrappedArgIndex)
	}
	if wrapper.AlwaysWrapsRequiredServiceType {
		t.Error("Expected AlwaysWrapsRequiredServiceType to default to false")
	}
}

// fakeContainer is a minimal matching double demonstrating the contract
// external containers must honor: when both a contract name and a contract
// key are present, the name takes precedence.
type fakeContainer struct {
	candidates []fakeCandidate
}

type fakeCandidate struct {
	id           string
	contractName string
	contractKey  any
}

func (c *fakeContainer) match(wantName string, wantKey any) (string, bool) {
	for _, cand := range c.candidates {
		if cand.contractName != "" {
			if cand.contractName == wantName {
				return cand.id, true
			}
			continue // named candidates never fall back to key matching
		}
		if cand.contractKey != nil && cand.contractKey == wantKey {
			return cand.id, true
		}
	}
	return "", false
}

func TestNameTakesPrecedenceOverKey(t *testing.T) {
	container := &fakeContainer{candidates: []fakeCandidate{
		{id: "named", contractName: "primary", contractKey: "legacy-key"},
		{id: "keyed", contractKey: "legacy-key"},
	}}

	// Both name and key present on the request: the named candidate wins
	// even though the keyed candidate also matches the key.
	id, ok := container.match("primary", "legacy-key")
	if !ok || id != "named" {
		t.Errorf("Expected the named candidate to win, got %q (found=%v)", id, ok)
	}

	// A candidate carrying a name must not be matched through its key.
	id, ok = container.match("other", "legacy-key")
	if !ok || id != "keyed" {
		t.Errorf("Expected key matching to skip named candidates, got %q (found=%v)", id, ok)
	}
}

func TestExportSpecVariantsAreNotExclusive(t *testing.T) {
	// A type may carry several export shapes at once; the model stores
	// them side by side and leaves conflict policy to the consumer.
	specs := []ExportSpec{
		MultiExport{Except: []reflect.Type{TypeOf[io.Closer]()}},
		DecoratorExport{ContractName: "primary"},
		ResolutionRoot{},
	}
	if len(specs) != 3 {
		t.Fatal("Expected all variants to coexist")
	}

	var decorators int
	for _, spec := range specs {
		if _, ok := spec.(DecoratorExport); ok {
			decorators++
		}
	}
	if decorators != 1 {
		t.Errorf("Expected exactly one decorator variant, got %d", decorators)
	}
}
