package annotations

import "fmt"

// AnnotationKind represents the kind of dryioc annotation
type AnnotationKind int

const (
	ExportAnnotation AnnotationKind = iota
	ExportKeyAnnotation
	ExportManyAnnotation
	FactoryAnnotation
	WrapperAnnotation
	DecoratorAnnotation
	OpenScopeAnnotation
	ResolutionRootAnnotation
	ReuseAnnotation
	MetadataAnnotation
	ImportAnnotation
	ImportExternalAnnotation
)

// String returns the string representation of the annotation kind
func (k AnnotationKind) String() string {
	switch k {
	case ExportAnnotation:
		return "export"
	case ExportKeyAnnotation:
		return "export_key"
	case ExportManyAnnotation:
		return "export_many"
	case FactoryAnnotation:
		return "factory"
	case WrapperAnnotation:
		return "wrapper"
	case DecoratorAnnotation:
		return "decorator"
	case OpenScopeAnnotation:
		return "open_scope"
	case ResolutionRootAnnotation:
		return "resolution_root"
	case ReuseAnnotation:
		return "reuse"
	case MetadataAnnotation:
		return "metadata"
	case ImportAnnotation:
		return "import"
	case ImportExternalAnnotation:
		return "import_external"
	default:
		return "unknown"
	}
}

// ParseAnnotationKind converts string to AnnotationKind
func ParseAnnotationKind(s string) (AnnotationKind, error) {
	switch s {
	case "export":
		return ExportAnnotation, nil
	case "export_key":
		return ExportKeyAnnotation, nil
	case "export_many":
		return ExportManyAnnotation, nil
	case "factory":
		return FactoryAnnotation, nil
	case "wrapper":
		return WrapperAnnotation, nil
	case "decorator":
		return DecoratorAnnotation, nil
	case "open_scope":
		return OpenScopeAnnotation, nil
	case "resolution_root":
		return ResolutionRootAnnotation, nil
	case "reuse":
		return ReuseAnnotation, nil
	case "metadata":
		return MetadataAnnotation, nil
	case "import":
		return ImportAnnotation, nil
	case "import_external":
		return ImportExternalAnnotation, nil
	default:
		return 0, fmt.Errorf("unknown annotation kind: %s", s)
	}
}

// IsFieldLevel reports whether the annotation attaches to a struct field
// (an import site) rather than to a type declaration.
func (k AnnotationKind) IsFieldLevel() bool {
	return k == ImportAnnotation || k == ImportExternalAnnotation
}

// SourceLocation represents the location of an annotation in source code
type SourceLocation struct {
	File   string // File path
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
}

// ParsedAnnotation represents a fully parsed annotation with type-safe parameters
type ParsedAnnotation struct {
	Kind       AnnotationKind         // Annotation kind enum
	Parameters map[string]interface{} // Typed parameters
	Location   SourceLocation         // Source location
	Raw        string                 // Original annotation text
}

// GetString returns a string parameter value with optional default
func (p *ParsedAnnotation) GetString(paramName string, defaultValue ...string) string {
	if value, exists := p.Parameters[paramName]; exists {
		if strValue, ok := value.(string); ok {
			return strValue
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetBool returns a boolean parameter value with optional default
func (p *ParsedAnnotation) GetBool(paramName string, defaultValue ...bool) bool {
	if value, exists := p.Parameters[paramName]; exists {
		if boolValue, ok := value.(bool); ok {
			return boolValue
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetInt returns an integer parameter value with optional default
func (p *ParsedAnnotation) GetInt(paramName string, defaultValue ...int) int {
	if value, exists := p.Parameters[paramName]; exists {
		if intValue, ok := value.(int); ok {
			return intValue
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetStringSlice returns a string slice parameter value with optional default
func (p *ParsedAnnotation) GetStringSlice(paramName string, defaultValue ...[]string) []string {
	if value, exists := p.Parameters[paramName]; exists {
		if sliceValue, ok := value.([]string); ok {
			return sliceValue
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// HasParameter checks if a parameter exists
func (p *ParsedAnnotation) HasParameter(paramName string) bool {
	_, exists := p.Parameters[paramName]
	return exists
}

// ParameterType represents the type of a parameter
type ParameterType int

const (
	StringType ParameterType = iota
	BoolType
	IntType
	StringSliceType
)

// String returns the string representation of the parameter type
func (p ParameterType) String() string {
	switch p {
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case StringSliceType:
		return "[]string"
	default:
		return "unknown"
	}
}

// ParameterSpec defines the specification for an annotation parameter
type ParameterSpec struct {
	Type         ParameterType           // Parameter type
	Required     bool                    // Whether parameter is required
	DefaultValue interface{}             // Default value if not provided
	Description  string                  // Parameter description
	Validator    func(interface{}) error // Custom validator function
}

// CustomValidator represents a custom validation function for annotations
type CustomValidator func(*ParsedAnnotation) error

// DescriptorSchema defines the schema for an annotation kind
type DescriptorSchema struct {
	Kind        AnnotationKind           // Annotation kind enum
	Description string                   // Human-readable description
	Positional  []string                 // Parameter names filled from positional arguments, in order
	Parameters  map[string]ParameterSpec // Parameter specifications
	Validators  []CustomValidator        // Custom validation functions
	Examples    []string                 // Usage examples
}
