package annotations

import (
	"fmt"
	"strings"
)

// Built-in annotation schemas. The annotation surface is
// //dryioc::<kind> [positional] [-Param=value] [-Flag].

// ExportSchema defines the schema for //dryioc::export annotations
var ExportSchema = DescriptorSchema{
	Kind:        ExportAnnotation,
	Description: "Exports the annotated type as a service under a single contract",
	Parameters: map[string]ParameterSpec{
		"Contract": {
			Type:        StringType,
			Required:    false,
			Description: "Contract type the service is exported under; defaults to the annotated type itself",
		},
		"Name": {
			Type:        StringType,
			Required:    false,
			Description: "Contract name; empty means the export is unnamed",
		},
	},
	Examples: []string{
		"//dryioc::export",
		"//dryioc::export -Contract=store.UserStore",
		"//dryioc::export -Contract=store.UserStore -Name=primary",
	},
}

// ExportKeySchema defines the schema for //dryioc::export_key annotations
var ExportKeySchema = DescriptorSchema{
	Kind:        ExportKeyAnnotation,
	Description: "Exports the annotated type under an exact service key",
	Parameters: map[string]ParameterSpec{
		"Key": {
			Type:        StringType,
			Required:    true,
			Description: "Service key the export is matched by; a string key also serves as a name match",
		},
		"Contract": {
			Type:        StringType,
			Required:    false,
			Description: "Contract type; defaults to the annotated type itself",
		},
	},
	Examples: []string{
		"//dryioc::export_key -Key=legacy",
		"//dryioc::export_key -Key=legacy -Contract=store.UserStore",
	},
}

// ExportManySchema defines the schema for //dryioc::export_many annotations
var ExportManySchema = DescriptorSchema{
	Kind:        ExportManyAnnotation,
	Description: "Exports every implemented contract type of the annotated type, minus the excluded ones",
	Parameters: map[string]ParameterSpec{
		"Key": {
			Type:        StringType,
			Required:    false,
			Description: "Service key applied to all exported contracts",
		},
		"Name": {
			Type:        StringType,
			Required:    false,
			Description: "Contract name applied to all exported contracts",
		},
		"Except": {
			Type:        StringSliceType,
			Required:    false,
			Description: "Comma-separated contract types to exclude from the export set",
		},
		"IncludeNonPublic": {
			Type:         BoolType,
			Required:     false,
			DefaultValue: false,
			Description:  "Whether unexported contract types are exported too",
		},
	},
	Examples: []string{
		"//dryioc::export_many",
		"//dryioc::export_many -Except=io.Closer",
		"//dryioc::export_many -Except=io.Closer,fmt.Stringer -IncludeNonPublic",
	},
}

// FactorySchema defines the schema for //dryioc::factory annotations
var FactorySchema = DescriptorSchema{
	Kind:        FactoryAnnotation,
	Description: "Marks the type as a factory whose methods produce services",
	Parameters:  map[string]ParameterSpec{},
	Examples: []string{
		"//dryioc::factory",
	},
}

// WrapperSchema defines the schema for //dryioc::wrapper annotations
var WrapperSchema = DescriptorSchema{
	Kind:        WrapperAnnotation,
	Description: "Marks the export as a generic wrapper around another service type",
	Parameters: map[string]ParameterSpec{
		"ArgIndex": {
			Type:         IntType,
			Required:     false,
			DefaultValue: -1,
			Description:  "Generic argument position holding the wrapped service type; -1 leaves it unspecified",
			Validator: func(v interface{}) error {
				index := v.(int)
				if index < -1 {
					return fmt.Errorf("must be -1 or a non-negative position, got %d", index)
				}
				return nil
			},
		},
		"AlwaysWrapsRequired": {
			Type:         BoolType,
			Required:     false,
			DefaultValue: false,
			Description:  "Whether the wrapper always wraps the required service type",
		},
	},
	Examples: []string{
		"//dryioc::wrapper",
		"//dryioc::wrapper -ArgIndex=0",
		"//dryioc::wrapper -AlwaysWrapsRequired",
	},
}

// DecoratorSchema defines the schema for //dryioc::decorator annotations
var DecoratorSchema = DescriptorSchema{
	Kind:        DecoratorAnnotation,
	Description: "Marks the export as decorating exports of the same contract",
	Parameters: map[string]ParameterSpec{
		"Name": {
			Type:        StringType,
			Required:    false,
			Description: "Contract name of the decorated exports; matched before Key",
		},
		"Key": {
			Type:        StringType,
			Required:    false,
			Description: "Service key of the decorated exports",
		},
	},
	Examples: []string{
		"//dryioc::decorator",
		"//dryioc::decorator -Name=primary",
		"//dryioc::decorator -Key=legacy",
	},
}

// OpenScopeSchema defines the schema for //dryioc::open_scope annotations
var OpenScopeSchema = DescriptorSchema{
	Kind:        OpenScopeAnnotation,
	Description: "Opens a new resolution-scope boundary for the exported type's own subtree",
	Parameters:  map[string]ParameterSpec{},
	Examples: []string{
		"//dryioc::open_scope",
	},
}

// ResolutionRootSchema defines the schema for //dryioc::resolution_root annotations
var ResolutionRootSchema = DescriptorSchema{
	Kind:        ResolutionRootAnnotation,
	Description: "Marks the export as a valid top-level resolution entry point",
	Parameters:  map[string]ParameterSpec{},
	Examples: []string{
		"//dryioc::resolution_root",
	},
}

// ReuseSchema defines the schema for //dryioc::reuse annotations
var ReuseSchema = DescriptorSchema{
	Kind:        ReuseAnnotation,
	Description: "Declares the lifetime/scope policy of the exported service",
	Positional:  []string{"kind"},
	Parameters: map[string]ParameterSpec{
		"kind": {
			Type:        StringType,
			Required:    true,
			Description: "Reuse kind: transient, singleton, current_scope, resolution_scope, web_request or thread",
			Validator: func(v interface{}) error {
				kind := v.(string)
				switch kind {
				case "transient", "singleton", "current_scope", "resolution_scope", "web_request", "thread":
					return nil
				}
				return fmt.Errorf("must be one of: transient, singleton, current_scope, resolution_scope, web_request, thread; got '%s'", kind)
			},
		},
		"Scope": {
			Type:        StringType,
			Required:    false,
			Description: "Ambient scope name for current_scope; empty matches the unnamed ambient scope",
		},
	},
	Examples: []string{
		"//dryioc::reuse singleton",
		"//dryioc::reuse current_scope -Scope=session",
		"//dryioc::reuse web_request",
	},
}

// MetadataSchema defines the schema for //dryioc::metadata annotations
var MetadataSchema = DescriptorSchema{
	Kind:        MetadataAnnotation,
	Description: "Attaches an opaque metadata value to the export",
	Positional:  []string{"value"},
	Parameters: map[string]ParameterSpec{
		"value": {
			Type:        StringType,
			Required:    true,
			Description: "Metadata payload attached to the export",
		},
	},
	Examples: []string{
		"//dryioc::metadata \"blue\"",
		"//dryioc::metadata priority-high",
	},
}

// ImportSchema defines the schema for //dryioc::import annotations
var ImportSchema = DescriptorSchema{
	Kind:        ImportAnnotation,
	Description: "Restricts the dependency site to an exact service key",
	Parameters: map[string]ParameterSpec{
		"Key": {
			Type:        StringType,
			Required:    true,
			Description: "Service key the import is matched by",
		},
		"Contract": {
			Type:        StringType,
			Required:    false,
			Description: "Contract type; defaults to the field's declared type",
		},
	},
	Examples: []string{
		"//dryioc::import -Key=primary",
		"//dryioc::import -Key=primary -Contract=store.UserStore",
	},
}

// ImportExternalSchema defines the schema for //dryioc::import_external annotations
var ImportExternalSchema = DescriptorSchema{
	Kind:        ImportExternalAnnotation,
	Description: "Imports a service, registering it on the fly when no matching export exists",
	Parameters: map[string]ParameterSpec{
		"Impl": {
			Type:        StringType,
			Required:    false,
			Description: "Implementation type registered when the service is missing; defaults to the field's declared type",
		},
		"Constructor": {
			Type:        StringSliceType,
			Required:    false,
			Description: "Ordered constructor parameter types selecting the constructor to use",
		},
		"Metadata": {
			Type:        StringType,
			Required:    false,
			Description: "Metadata value attached to the fallback registration",
		},
		"Key": {
			Type:        StringType,
			Required:    false,
			Description: "Service key of the fallback registration",
		},
		"Contract": {
			Type:        StringType,
			Required:    false,
			Description: "Contract type; defaults to the field's declared type",
		},
	},
	Examples: []string{
		"//dryioc::import_external -Impl=store.PgUserStore",
		"//dryioc::import_external -Impl=store.PgUserStore -Constructor=store.Config,log.Logger",
		"//dryioc::import_external -Key=fallback -Metadata=\"generated\"",
	},
}

// RegisterBuiltinSchemas registers all built-in annotation schemas with the given registry
func RegisterBuiltinSchemas(registry SchemaRegistry) error {
	for _, schema := range BuiltinSchemas() {
		if err := registry.Register(schema.Kind, schema); err != nil {
			return fmt.Errorf("failed to register %s schema: %w", schema.Kind.String(), err)
		}
	}
	return nil
}

// BuiltinSchemas returns all built-in annotation schemas
func BuiltinSchemas() []DescriptorSchema {
	return []DescriptorSchema{
		ExportSchema,
		ExportKeySchema,
		ExportManySchema,
		FactorySchema,
		WrapperSchema,
		DecoratorSchema,
		OpenScopeSchema,
		ResolutionRootSchema,
		ReuseSchema,
		MetadataSchema,
		ImportSchema,
		ImportExternalSchema,
	}
}

// ValidateReuseParameters is a custom validator for reuse annotations
func ValidateReuseParameters(annotation *ParsedAnnotation) error {
	kind := annotation.GetString("kind")
	if annotation.HasParameter("Scope") && kind != "current_scope" {
		return fmt.Errorf("-Scope is only valid with current_scope, not '%s'", kind)
	}
	return nil
}

// ValidateExportManyParameters is a custom validator for export_many annotations
func ValidateExportManyParameters(annotation *ParsedAnnotation) error {
	for _, except := range annotation.GetStringSlice("Except") {
		if strings.TrimSpace(except) == "" {
			return fmt.Errorf("excluded contract type cannot be empty")
		}
	}
	return nil
}

// init wires custom validators into the schemas that need them
func init() {
	ReuseSchema.Validators = []CustomValidator{ValidateReuseParameters}
	ExportManySchema.Validators = []CustomValidator{ValidateExportManyParameters}
}
