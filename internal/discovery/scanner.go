// Package discovery extracts dryioc annotations from Go source and turns
// them into registration records. It is purely syntactic: source text in,
// string-typed records out. Turning records into reflect-typed descriptors
// is the consumer's concern.
package discovery

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"

	"github.com/exileDev/DryIoc/internal/annotations"
	"github.com/exileDev/DryIoc/internal/errors"
	"github.com/exileDev/DryIoc/internal/models"
)

// Scanner extracts dryioc annotations from Go source files
type Scanner struct {
	fileSet *token.FileSet
	parser  *annotations.Parser
}

// NewScanner creates a new annotation scanner
func NewScanner() *Scanner {
	return &Scanner{
		fileSet: token.NewFileSet(),
		parser:  annotations.NewParser(annotations.DefaultRegistry()),
	}
}

// ParseSource parses source code from a string, mainly for tests
func (s *Scanner) ParseSource(filename, source string) (*models.PackageRegistrations, error) {
	file, err := parser.ParseFile(s.fileSet, filename, source, parser.ParseComments)
	if err != nil {
		return nil, errors.WrapParseError(filename, err)
	}

	pkg := &models.PackageRegistrations{
		PackageName: file.Name.Name,
		PackagePath: "./",
	}
	errList := errors.NewErrorList()
	s.collectFile(file, filename, pkg, errList)
	if !errList.IsEmpty() {
		return nil, errList
	}

	return pkg, nil
}

// ParseDirectory scans the Go package in the given directory for annotated
// types
func (s *Scanner) ParseDirectory(path string) (*models.PackageRegistrations, error) {
	pkgs, err := parser.ParseDir(s.fileSet, path, nil, parser.ParseComments)
	if err != nil {
		return nil, errors.WrapDiscoveryError(path, err)
	}
	if len(pkgs) == 0 {
		return nil, errors.Newf(errors.DiscoveryErrorCode, "no Go packages found in directory %s", path)
	}
	if len(pkgs) > 1 {
		return nil, errors.Newf(errors.DiscoveryErrorCode, "multiple packages found in directory %s", path)
	}

	var astPkg *ast.Package
	var packageName string
	for name, p := range pkgs {
		astPkg = p
		packageName = name
	}

	pkg := &models.PackageRegistrations{
		PackageName: packageName,
		PackagePath: path,
	}
	errList := errors.NewErrorList()
	for fileName, file := range astPkg.Files {
		s.collectFile(file, fileName, pkg, errList)
	}
	if !errList.IsEmpty() {
		return nil, errList
	}

	return pkg, nil
}

// collectFile walks one file's declarations and appends registration
// records for every annotated type. Bad annotations do not stop the walk;
// every error in the file is collected so one scan reports them all.
func (s *Scanner) collectFile(file *ast.File, fileName string, pkg *models.PackageRegistrations, errList *errors.ErrorList) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			// The doc comment sits on the declaration for single-spec
			// declarations, on the spec inside grouped ones. A comment
			// above a type (...) group documents the group, not its
			// members, matching go/doc.
			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}

			info, err := s.collectType(typeSpec, doc, fileName, pkg)
			if err != nil {
				errList.Add(s.annotationError(typeSpec.Name.Name, err))
				continue
			}
			if info != nil {
				pkg.Registrations = append(pkg.Registrations, *info)
			}
		}
	}
}

// collectType builds a registration record for one type declaration, or
// returns nil when the type carries no dryioc annotations
func (s *Scanner) collectType(typeSpec *ast.TypeSpec, doc *ast.CommentGroup, fileName string, pkg *models.PackageRegistrations) (*models.RegistrationInfo, error) {
	typeAnnotations, err := s.parseComments(doc, fileName)
	if err != nil {
		return nil, s.annotationError(typeSpec.Name.Name, err)
	}

	fieldSites, fieldAnnotations, err := s.collectFieldAnnotations(typeSpec, fileName)
	if err != nil {
		return nil, s.annotationError(typeSpec.Name.Name, err)
	}

	if len(typeAnnotations) == 0 && len(fieldAnnotations) == 0 {
		return nil, nil
	}

	position := s.fileSet.Position(typeSpec.Pos())
	builder := models.NewRegistrationBuilder(typeSpec.Name.Name, pkg.PackageName, pkg.PackagePath).
		WithSource(fileName, position.Line)

	for _, annotation := range typeAnnotations {
		if annotation.Kind.IsFieldLevel() {
			return nil, errors.RegistrationError(typeSpec.Name.Name,
				fmt.Sprintf("'%s' annotations belong on struct fields, not on the type", annotation.Kind)).
				WithLocation(errors.SourceLocation{File: fileName, Line: annotation.Location.Line})
		}
		if err := builder.ApplyTypeAnnotation(annotation); err != nil {
			return nil, s.annotationError(typeSpec.Name.Name, err)
		}
	}

	for i, annotation := range fieldAnnotations {
		site := fieldSites[i]
		if !annotation.Kind.IsFieldLevel() {
			return nil, errors.RegistrationError(typeSpec.Name.Name,
				fmt.Sprintf("'%s' annotations belong on the type, not on field %s", annotation.Kind, site.name)).
				WithLocation(errors.SourceLocation{File: fileName, Line: annotation.Location.Line})
		}
		if err := builder.ApplyFieldAnnotation(site.name, site.typeName, annotation); err != nil {
			return nil, s.annotationError(typeSpec.Name.Name, err)
		}
	}

	info := builder.Build()
	return &info, nil
}

type fieldSite struct {
	name     string
	typeName string
}

// collectFieldAnnotations gathers import annotations from struct fields.
// Non-struct types have no dependency sites.
func (s *Scanner) collectFieldAnnotations(typeSpec *ast.TypeSpec, fileName string) ([]fieldSite, []*annotations.ParsedAnnotation, error) {
	structType, ok := typeSpec.Type.(*ast.StructType)
	if !ok || structType.Fields == nil {
		return nil, nil, nil
	}

	var sites []fieldSite
	var parsed []*annotations.ParsedAnnotation
	for _, field := range structType.Fields.List {
		fieldAnnotations, err := s.parseComments(field.Doc, fileName)
		if err != nil {
			return nil, nil, err
		}
		if len(fieldAnnotations) == 0 {
			continue
		}

		name := ""
		if len(field.Names) > 0 {
			name = field.Names[0].Name
		}
		typeName := types.ExprString(field.Type)

		for _, annotation := range fieldAnnotations {
			sites = append(sites, fieldSite{name: name, typeName: typeName})
			parsed = append(parsed, annotation)
		}
	}

	return sites, parsed, nil
}

// parseComments parses every dryioc annotation line in a comment group
func (s *Scanner) parseComments(doc *ast.CommentGroup, fileName string) ([]*annotations.ParsedAnnotation, error) {
	if doc == nil {
		return nil, nil
	}

	var parsed []*annotations.ParsedAnnotation
	for _, comment := range doc.List {
		if !annotations.IsAnnotation(comment.Text) {
			continue
		}

		position := s.fileSet.Position(comment.Pos())
		location := annotations.SourceLocation{
			File:   fileName,
			Line:   position.Line,
			Column: position.Column,
		}
		annotation, err := s.parser.ParseAnnotation(comment.Text, location)
		if err != nil {
			return nil, errors.WrapParseError(fmt.Sprintf("annotation at %s:%d", fileName, position.Line), err)
		}
		parsed = append(parsed, annotation)
	}

	return parsed, nil
}

func (s *Scanner) annotationError(structName string, err error) errors.DryIocError {
	if rich, ok := err.(errors.DryIocError); ok {
		return rich
	}
	return errors.RegistrationError(structName, err.Error())
}
