package annotations

import (
	"fmt"
	"sort"
	"sync"

	"github.com/exileDev/DryIoc/internal/errors"
)

// SchemaRegistry manages the descriptor schemas known to the parser
type SchemaRegistry interface {
	// Register a new annotation kind with its schema
	Register(kind AnnotationKind, schema DescriptorSchema) error

	// GetSchema retrieves the schema for an annotation kind
	GetSchema(kind AnnotationKind) (DescriptorSchema, error)

	// ListKinds returns all registered annotation kinds, sorted
	ListKinds() []AnnotationKind

	// IsRegistered checks if an annotation kind is registered
	IsRegistered(kind AnnotationKind) bool
}

type schemaRegistry struct {
	mu      sync.RWMutex // Protects concurrent access
	schemas map[AnnotationKind]DescriptorSchema
}

// NewRegistry creates a new schema registry
func NewRegistry() SchemaRegistry {
	return &schemaRegistry{
		schemas: make(map[AnnotationKind]DescriptorSchema),
	}
}

var (
	defaultRegistry     SchemaRegistry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the global schema registry with all built-in
// schemas registered
func DefaultRegistry() SchemaRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := RegisterBuiltinSchemas(defaultRegistry); err != nil {
			// Built-in schemas are compiled in; a failure here is a bug.
			panic(fmt.Sprintf("failed to register built-in schemas: %v", err))
		}
	})
	return defaultRegistry
}

// Register adds a new annotation kind with its schema to the registry
func (r *schemaRegistry) Register(kind AnnotationKind, schema DescriptorSchema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if schema.Kind != kind {
		return fmt.Errorf("schema kind %s does not match annotation kind %s",
			schema.Kind.String(), kind.String())
	}

	if _, exists := r.schemas[kind]; exists {
		return fmt.Errorf("annotation kind %s is already registered", kind.String())
	}

	if err := validateSchema(schema); err != nil {
		return errors.WrapSchemaError(kind.String(), err)
	}

	r.schemas[kind] = schema
	return nil
}

// GetSchema retrieves the schema for an annotation kind
func (r *schemaRegistry) GetSchema(kind AnnotationKind) (DescriptorSchema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schema, exists := r.schemas[kind]
	if !exists {
		return DescriptorSchema{}, fmt.Errorf("annotation kind %s is not registered", kind.String())
	}

	return schema, nil
}

// ListKinds returns all registered annotation kinds, sorted
func (r *schemaRegistry) ListKinds() []AnnotationKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]AnnotationKind, 0, len(r.schemas))
	for kind := range r.schemas {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}

// IsRegistered checks if an annotation kind is registered
func (r *schemaRegistry) IsRegistered(kind AnnotationKind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.schemas[kind]
	return exists
}

// validateSchema performs basic validation on a schema
func validateSchema(schema DescriptorSchema) error {
	for paramName, paramSpec := range schema.Parameters {
		if paramName == "" {
			return fmt.Errorf("parameter name cannot be empty")
		}

		if paramSpec.Type < StringType || paramSpec.Type > StringSliceType {
			return fmt.Errorf("invalid parameter type for %s: %d", paramName, paramSpec.Type)
		}

		if paramSpec.DefaultValue != nil {
			if err := validateDefaultValue(paramName, paramSpec.Type, paramSpec.DefaultValue); err != nil {
				return err
			}
		}
	}

	// Positional names must refer to declared parameters.
	for _, name := range schema.Positional {
		if _, ok := schema.Parameters[name]; !ok {
			return fmt.Errorf("positional parameter %s is not declared in the schema", name)
		}
	}

	return nil
}

// validateDefaultValue checks if the default value matches the parameter type
func validateDefaultValue(paramName string, paramType ParameterType, defaultValue interface{}) error {
	switch paramType {
	case StringType:
		if _, ok := defaultValue.(string); !ok {
			return fmt.Errorf("default value for string parameter %s must be string, got %T", paramName, defaultValue)
		}
	case BoolType:
		if _, ok := defaultValue.(bool); !ok {
			return fmt.Errorf("default value for bool parameter %s must be bool, got %T", paramName, defaultValue)
		}
	case IntType:
		if _, ok := defaultValue.(int); !ok {
			return fmt.Errorf("default value for int parameter %s must be int, got %T", paramName, defaultValue)
		}
	case StringSliceType:
		if _, ok := defaultValue.([]string); !ok {
			return fmt.Errorf("default value for []string parameter %s must be []string, got %T", paramName, defaultValue)
		}
	default:
		return fmt.Errorf("unknown parameter type for %s: %d", paramName, paramType)
	}

	return nil
}
