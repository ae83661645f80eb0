// Package models holds the string-typed registration records produced by
// annotation discovery. They mirror the reflect-typed descriptors in
// pkg/dryioc for tooling output: contract types are source-level names
// here, since discovery is purely syntactic.
package models

// ExportShape identifies which export descriptor variant an annotation
// declared
type ExportShape int

const (
	ShapeExport ExportShape = iota
	ShapeKeyedExport
	ShapeMultiExport
	ShapeFactoryExport
	ShapeWrapperExport
	ShapeDecoratorExport
	ShapeOpenResolutionScope
	ShapeResolutionRoot
)

// String returns the string representation of the export shape
func (s ExportShape) String() string {
	switch s {
	case ShapeExport:
		return "export"
	case ShapeKeyedExport:
		return "keyed_export"
	case ShapeMultiExport:
		return "multi_export"
	case ShapeFactoryExport:
		return "factory"
	case ShapeWrapperExport:
		return "wrapper"
	case ShapeDecoratorExport:
		return "decorator"
	case ShapeOpenResolutionScope:
		return "open_resolution_scope"
	case ShapeResolutionRoot:
		return "resolution_root"
	default:
		return "unknown"
	}
}

// SourceInfo records where a record was declared
type SourceInfo struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// ExportInfo describes one export declaration on a type. Only the fields
// relevant to the Shape are populated.
type ExportInfo struct {
	Shape               ExportShape `json:"shape"`
	Contract            string      `json:"contract,omitempty"`
	Name                string      `json:"name,omitempty"`
	Key                 string      `json:"key,omitempty"`
	Except              []string    `json:"except,omitempty"`
	IncludeNonPublic    bool        `json:"include_non_public,omitempty"`
	WrappedArgIndex     int         `json:"wrapped_arg_index,omitempty"`
	AlwaysWrapsRequired bool        `json:"always_wraps_required,omitempty"`
}

// ReuseInfo describes the declared lifetime policy
type ReuseInfo struct {
	Kind      string `json:"kind"`
	ScopeName string `json:"scope_name,omitempty"`
}

// ImportSiteInfo describes one annotated dependency site (struct field)
type ImportSiteInfo struct {
	FieldName   string     `json:"field_name"`
	FieldType   string     `json:"field_type"`
	External    bool       `json:"external,omitempty"` // register-on-demand import
	Key         string     `json:"key,omitempty"`
	Contract    string     `json:"contract,omitempty"`
	Impl        string     `json:"impl,omitempty"`
	Constructor []string   `json:"constructor,omitempty"`
	Metadata    string     `json:"metadata,omitempty"`
	Source      SourceInfo `json:"source"`
}

// RegistrationInfo is the discovery output for one annotated type: its
// export declarations, optional reuse policy and metadata attachment, and
// the import annotations found on its fields.
type RegistrationInfo struct {
	ID          string           `json:"id"`
	StructName  string           `json:"struct_name"`
	PackageName string           `json:"package_name"`
	PackagePath string           `json:"package_path"`
	Exports     []ExportInfo     `json:"exports"`
	Reuse       *ReuseInfo       `json:"reuse,omitempty"`
	Metadata    string           `json:"metadata,omitempty"`
	Imports     []ImportSiteInfo `json:"imports,omitempty"`
	Source      SourceInfo       `json:"source"`
}

// HasExports reports whether the type declared at least one export shape
func (r *RegistrationInfo) HasExports() bool {
	return len(r.Exports) > 0
}

// ExportsOfShape returns the export declarations of the given shape
func (r *RegistrationInfo) ExportsOfShape(shape ExportShape) []ExportInfo {
	var out []ExportInfo
	for _, export := range r.Exports {
		if export.Shape == shape {
			out = append(out, export)
		}
	}
	return out
}

// PackageRegistrations represents all registrations found in one package
type PackageRegistrations struct {
	PackageName   string             `json:"package_name"`
	PackagePath   string             `json:"package_path"`
	Registrations []RegistrationInfo `json:"registrations"`
}
