package dryioc

import "reflect"

// ImportSpec is the closed set of import descriptor variants, describing
// how a dependency site requests a service.
type ImportSpec interface {
	importSpec()
}

// KeyedImport restricts import matching to an exact key. A string key also
// serves as a name-based match. A nil ContractType means the import site's
// own declared type is the contract.
type KeyedImport struct {
	ContractKey  any
	ContractType reflect.Type
}

func (KeyedImport) importSpec() {}

// ExternalImport imports a service that may not be registered yet: if no
// matching export exists, the container registers one on the fly from the
// supplied implementation type, constructor signature, metadata and
// key/type, then imports it.
//
// Every field is optional. Nil fields fall back to the importing site's
// own declared type; a nil ConstructorSignature means "use the default
// constructor selection rule".
type ExternalImport struct {
	ImplementationType   reflect.Type
	ConstructorSignature []reflect.Type
	Metadata             any
	ContractKey          any
	ContractType         reflect.Type
}

func (ExternalImport) importSpec() {}
