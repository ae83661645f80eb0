package models

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/exileDev/DryIoc/internal/annotations"
	"github.com/exileDev/DryIoc/pkg/dryioc"
)

// RegistrationBuilder assembles a RegistrationInfo from the annotations
// discovered on one type declaration and its fields
type RegistrationBuilder struct {
	info RegistrationInfo
}

// NewRegistrationBuilder creates a builder for the named struct
func NewRegistrationBuilder(structName, packageName, packagePath string) *RegistrationBuilder {
	return &RegistrationBuilder{
		info: RegistrationInfo{
			ID:          uuid.NewString(),
			StructName:  structName,
			PackageName: packageName,
			PackagePath: packagePath,
		},
	}
}

// WithSource records where the type declaration lives
func (b *RegistrationBuilder) WithSource(file string, line int) *RegistrationBuilder {
	b.info.Source = SourceInfo{File: file, Line: line}
	return b
}

// ApplyTypeAnnotation folds one type-level annotation into the record
func (b *RegistrationBuilder) ApplyTypeAnnotation(annotation *annotations.ParsedAnnotation) error {
	switch annotation.Kind {
	case annotations.ExportAnnotation:
		b.info.Exports = append(b.info.Exports, ExportInfo{
			Shape:    ShapeExport,
			Contract: annotation.GetString("Contract"),
			Name:     annotation.GetString("Name"),
		})
	case annotations.ExportKeyAnnotation:
		b.info.Exports = append(b.info.Exports, ExportInfo{
			Shape:    ShapeKeyedExport,
			Key:      annotation.GetString("Key"),
			Contract: annotation.GetString("Contract"),
		})
	case annotations.ExportManyAnnotation:
		b.info.Exports = append(b.info.Exports, ExportInfo{
			Shape:            ShapeMultiExport,
			Key:              annotation.GetString("Key"),
			Name:             annotation.GetString("Name"),
			Except:           annotation.GetStringSlice("Except"),
			IncludeNonPublic: annotation.GetBool("IncludeNonPublic"),
		})
	case annotations.FactoryAnnotation:
		b.info.Exports = append(b.info.Exports, ExportInfo{Shape: ShapeFactoryExport})
	case annotations.WrapperAnnotation:
		b.info.Exports = append(b.info.Exports, ExportInfo{
			Shape:               ShapeWrapperExport,
			WrappedArgIndex:     annotation.GetInt("ArgIndex", dryioc.UnspecifiedWrappedArg),
			AlwaysWrapsRequired: annotation.GetBool("AlwaysWrapsRequired"),
		})
	case annotations.DecoratorAnnotation:
		b.info.Exports = append(b.info.Exports, ExportInfo{
			Shape: ShapeDecoratorExport,
			Name:  annotation.GetString("Name"),
			Key:   annotation.GetString("Key"),
		})
	case annotations.OpenScopeAnnotation:
		b.info.Exports = append(b.info.Exports, ExportInfo{Shape: ShapeOpenResolutionScope})
	case annotations.ResolutionRootAnnotation:
		b.info.Exports = append(b.info.Exports, ExportInfo{Shape: ShapeResolutionRoot})
	case annotations.ReuseAnnotation:
		if b.info.Reuse != nil {
			return fmt.Errorf("type %s declares more than one reuse annotation", b.info.StructName)
		}
		reuse, err := reuseFromAnnotation(annotation)
		if err != nil {
			return err
		}
		b.info.Reuse = reuse
	case annotations.MetadataAnnotation:
		if b.info.Metadata != "" {
			return fmt.Errorf("type %s declares more than one metadata annotation", b.info.StructName)
		}
		b.info.Metadata = annotation.GetString("value")
	default:
		return fmt.Errorf("annotation '%s' is not valid on a type declaration", annotation.Kind)
	}
	return nil
}

// ApplyFieldAnnotation folds one field-level import annotation into the record
func (b *RegistrationBuilder) ApplyFieldAnnotation(fieldName, fieldType string, annotation *annotations.ParsedAnnotation) error {
	site := ImportSiteInfo{
		FieldName: fieldName,
		FieldType: fieldType,
		Source: SourceInfo{
			File: annotation.Location.File,
			Line: annotation.Location.Line,
		},
	}

	switch annotation.Kind {
	case annotations.ImportAnnotation:
		site.Key = annotation.GetString("Key")
		site.Contract = annotation.GetString("Contract")
	case annotations.ImportExternalAnnotation:
		site.External = true
		site.Key = annotation.GetString("Key")
		site.Contract = annotation.GetString("Contract")
		site.Impl = annotation.GetString("Impl")
		site.Constructor = annotation.GetStringSlice("Constructor")
		site.Metadata = annotation.GetString("Metadata")
	default:
		return fmt.Errorf("annotation '%s' is not valid on a struct field", annotation.Kind)
	}

	b.info.Imports = append(b.info.Imports, site)
	return nil
}

// Build returns the assembled record
func (b *RegistrationBuilder) Build() RegistrationInfo {
	return b.info
}

// reuseFromAnnotation maps the annotation's reuse token to a ReuseInfo.
// The web_request and thread conveniences become CurrentScope with the
// reserved scope names from pkg/dryioc.
func reuseFromAnnotation(annotation *annotations.ParsedAnnotation) (*ReuseInfo, error) {
	token := annotation.GetString("kind")
	switch token {
	case "web_request":
		return &ReuseInfo{
			Kind:      dryioc.ReuseCurrentScope.String(),
			ScopeName: dryioc.WebRequestScopeName,
		}, nil
	case "thread":
		return &ReuseInfo{
			Kind:      dryioc.ReuseCurrentScope.String(),
			ScopeName: dryioc.ThreadScopeName,
		}, nil
	}

	kind, err := dryioc.ParseReuseKind(token)
	if err != nil {
		return nil, err
	}
	return &ReuseInfo{
		Kind:      kind.String(),
		ScopeName: annotation.GetString("Scope"),
	}, nil
}

// ToReuse converts the record back to the core descriptor. Reuse is the
// one descriptor whose fields are plain strings, so the round trip needs
// no type resolution.
func (r *ReuseInfo) ToReuse() (dryioc.Reuse, error) {
	kind, err := dryioc.ParseReuseKind(r.Kind)
	if err != nil {
		return dryioc.Reuse{}, err
	}
	if kind == dryioc.ReuseCurrentScope {
		return dryioc.ScopedReuse(r.ScopeName), nil
	}
	return dryioc.Reuse{Kind: kind}, nil
}
