package annotations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/exileDev/DryIoc/internal/errors"
)

// Prefix is the comment marker introducing a dryioc annotation.
const Prefix = "dryioc::"

// annotationBody is the participle grammar for everything after the
// "//dryioc::" prefix: a kind, optional positional arguments, then
// -Param=value pairs and bare -Flag switches.
type annotationBody struct {
	Kind       string            `parser:"@Bare"`
	Positional []string          `parser:"@(Bare|String|Number)*"`
	Params     []annotationParam `parser:"@@*"`
}

type annotationParam struct {
	Name  string  `parser:"Dash @Bare"`
	Value *string `parser:"(Equals @(Bare|String|Number))?"`
}

// Parser parses dryioc comment annotations against registered schemas
type Parser struct {
	registry SchemaRegistry
	parser   *participle.Parser[annotationBody]
}

// NewParser creates a new annotation parser backed by the given registry
func NewParser(registry SchemaRegistry) *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Number", Pattern: `-?[0-9]+(\.[0-9]+)?`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Bare", Pattern: `[^\s="-][^\s=]*`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[annotationBody](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{
		registry: registry,
		parser:   parser,
	}
}

// IsAnnotation reports whether the comment line carries a dryioc annotation
func IsAnnotation(comment string) bool {
	content := strings.TrimSpace(comment)
	content = strings.TrimPrefix(content, "//")
	return strings.HasPrefix(strings.TrimSpace(content), Prefix)
}

// ParseAnnotation parses a single annotation comment line
func (p *Parser) ParseAnnotation(comment string, location SourceLocation) (*ParsedAnnotation, error) {
	body, err := p.stripPrefix(comment)
	if err != nil {
		return nil, err
	}

	ast, err := p.parser.ParseString(location.File, body)
	if err != nil {
		return nil, fmt.Errorf("malformed annotation: %w", err)
	}

	kind, err := ParseAnnotationKind(ast.Kind)
	if err != nil {
		return nil, err
	}
	if !p.registry.IsRegistered(kind) {
		return nil, fmt.Errorf("annotation kind '%s' is not registered", ast.Kind)
	}
	schema, err := p.registry.GetSchema(kind)
	if err != nil {
		return nil, err
	}

	parsed := &ParsedAnnotation{
		Kind:       kind,
		Parameters: make(map[string]interface{}),
		Location:   location,
		Raw:        comment,
	}

	if len(ast.Positional) > len(schema.Positional) {
		return nil, fmt.Errorf("annotation '%s' takes at most %d positional arguments, got %d",
			ast.Kind, len(schema.Positional), len(ast.Positional))
	}
	for i, value := range ast.Positional {
		name := schema.Positional[i]
		parsed.Parameters[name] = p.convertValue(value, schema.Parameters[name].Type)
	}

	for _, param := range ast.Params {
		spec, known := schema.Parameters[param.Name]
		if !known {
			return nil, fmt.Errorf("unknown parameter '-%s' for annotation '%s'", param.Name, ast.Kind)
		}
		if param.Value != nil {
			parsed.Parameters[param.Name] = p.convertValue(*param.Value, spec.Type)
			continue
		}
		// Bare -Flag form: booleans switch on, everything else takes its
		// schema default.
		switch {
		case spec.Type == BoolType:
			parsed.Parameters[param.Name] = true
		case spec.DefaultValue != nil:
			parsed.Parameters[param.Name] = spec.DefaultValue
		default:
			return nil, fmt.Errorf("parameter '-%s' requires a value", param.Name)
		}
	}

	if err := p.Validate(parsed, schema); err != nil {
		return nil, err
	}

	return parsed, nil
}

// Validate checks a parsed annotation against its schema: required
// parameters, per-parameter validators, then the schema's custom
// validators.
func (p *Parser) Validate(annotation *ParsedAnnotation, schema DescriptorSchema) error {
	for name, spec := range schema.Parameters {
		value, exists := annotation.Parameters[name]
		if !exists {
			if spec.Required {
				return errors.ValidationError(name, fmt.Sprintf("required by annotation '%s'", schema.Kind))
			}
			continue
		}
		if err := checkParameterType(value, spec.Type); err != nil {
			return errors.ValidationError(name, err.Error())
		}
		if spec.Validator != nil {
			if err := spec.Validator(value); err != nil {
				return errors.ValidationError(name, err.Error())
			}
		}
	}

	for _, validate := range schema.Validators {
		if err := validate(annotation); err != nil {
			return err
		}
	}

	return nil
}

// checkParameterType verifies the converted value carries the schema type
func checkParameterType(value interface{}, paramType ParameterType) error {
	switch paramType {
	case StringType:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	case BoolType:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected bool, got '%v'", value)
		}
	case IntType:
		if _, ok := value.(int); !ok {
			return fmt.Errorf("expected int, got '%v'", value)
		}
	case StringSliceType:
		if _, ok := value.([]string); !ok {
			return fmt.Errorf("expected comma-separated list, got %T", value)
		}
	}
	return nil
}

// stripPrefix removes the comment marker and the dryioc:: prefix
func (p *Parser) stripPrefix(comment string) (string, error) {
	content := strings.TrimSpace(comment)
	if !strings.HasPrefix(content, "//") {
		return "", fmt.Errorf("annotation must start with '//'")
	}
	content = strings.TrimSpace(strings.TrimPrefix(content, "//"))

	if !strings.HasPrefix(content, Prefix) {
		return "", fmt.Errorf("annotation must carry the '%s' prefix", Prefix)
	}
	content = strings.TrimSpace(strings.TrimPrefix(content, Prefix))
	if content == "" {
		return "", fmt.Errorf("empty annotation")
	}

	return content, nil
}

// convertValue converts a raw token to the parameter's schema type.
// Unconvertible values are kept as strings so that per-parameter
// validators report them with context.
func (p *Parser) convertValue(raw string, paramType ParameterType) interface{} {
	switch paramType {
	case IntType:
		if intVal, err := strconv.Atoi(raw); err == nil {
			return intVal
		}
		return raw
	case BoolType:
		if boolVal, err := strconv.ParseBool(raw); err == nil {
			return boolVal
		}
		return raw
	case StringSliceType:
		parts := strings.Split(unquote(raw), ",")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}
		return parts
	default:
		return unquote(raw)
	}
}

// unquote strips surrounding double quotes and unescapes embedded ones
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strings.ReplaceAll(s[1:len(s)-1], `\"`, `"`)
	}
	return s
}
