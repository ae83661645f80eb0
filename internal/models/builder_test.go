package models

import (
	"testing"

	"github.com/exileDev/DryIoc/internal/annotations"
	"github.com/exileDev/DryIoc/pkg/dryioc"
)

func parseTestAnnotation(t *testing.T, comment string) *annotations.ParsedAnnotation {
	t.Helper()
	parsed, err := annotations.NewParser(annotations.DefaultRegistry()).
		ParseAnnotation(comment, annotations.SourceLocation{File: "svc.go", Line: 3})
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", comment, err)
	}
	return parsed
}

func TestBuilderCollectsExportShapes(t *testing.T) {
	builder := NewRegistrationBuilder("UserService", "services", "./internal/services")
	builder.WithSource("svc.go", 2)

	comments := []string{
		"//dryioc::export_many -Except=io.Closer",
		"//dryioc::decorator -Name=primary",
		"//dryioc::resolution_root",
	}
	for _, comment := range comments {
		if err := builder.ApplyTypeAnnotation(parseTestAnnotation(t, comment)); err != nil {
			t.Fatalf("Failed to apply %q: %v", comment, err)
		}
	}

	info := builder.Build()
	if info.ID == "" {
		t.Error("Expected a generated registration ID")
	}
	if !info.HasExports() || len(info.Exports) != 3 {
		t.Fatalf("Expected 3 exports, got %d", len(info.Exports))
	}

	multi := info.ExportsOfShape(ShapeMultiExport)
	if len(multi) != 1 || len(multi[0].Except) != 1 || multi[0].Except[0] != "io.Closer" {
		t.Errorf("Unexpected multi export: %+v", multi)
	}
	if len(info.ExportsOfShape(ShapeDecoratorExport)) != 1 {
		t.Error("Expected one decorator export")
	}
	if info.Source.File != "svc.go" || info.Source.Line != 2 {
		t.Errorf("Unexpected source info: %+v", info.Source)
	}
}

func TestBuilderUniqueIDs(t *testing.T) {
	a := NewRegistrationBuilder("A", "p", ".").Build()
	b := NewRegistrationBuilder("B", "p", ".").Build()
	if a.ID == b.ID {
		t.Error("Expected distinct registration IDs")
	}
}

func TestBuilderReuseMapping(t *testing.T) {
	tests := []struct {
		comment   string
		kind      string
		scopeName string
	}{
		{"//dryioc::reuse singleton", "singleton", ""},
		{"//dryioc::reuse current_scope -Scope=session", "current_scope", "session"},
		{"//dryioc::reuse current_scope", "current_scope", ""},
		{"//dryioc::reuse web_request", "current_scope", dryioc.WebRequestScopeName},
		{"//dryioc::reuse thread", "current_scope", dryioc.ThreadScopeName},
	}

	for _, tt := range tests {
		builder := NewRegistrationBuilder("Svc", "p", ".")
		if err := builder.ApplyTypeAnnotation(parseTestAnnotation(t, tt.comment)); err != nil {
			t.Fatalf("Failed to apply %q: %v", tt.comment, err)
		}
		info := builder.Build()
		if info.Reuse == nil {
			t.Fatalf("Expected reuse info for %q", tt.comment)
		}
		if info.Reuse.Kind != tt.kind || info.Reuse.ScopeName != tt.scopeName {
			t.Errorf("%q mapped to (%s, %q), expected (%s, %q)",
				tt.comment, info.Reuse.Kind, info.Reuse.ScopeName, tt.kind, tt.scopeName)
		}
	}
}

func TestBuilderRejectsDuplicateReuse(t *testing.T) {
	builder := NewRegistrationBuilder("Svc", "p", ".")
	if err := builder.ApplyTypeAnnotation(parseTestAnnotation(t, "//dryioc::reuse singleton")); err != nil {
		t.Fatal(err)
	}
	if err := builder.ApplyTypeAnnotation(parseTestAnnotation(t, "//dryioc::reuse transient")); err == nil {
		t.Error("Expected error for a second reuse annotation")
	}
}

func TestBuilderRejectsFieldAnnotationOnType(t *testing.T) {
	builder := NewRegistrationBuilder("Svc", "p", ".")
	err := builder.ApplyTypeAnnotation(parseTestAnnotation(t, "//dryioc::import -Key=primary"))
	if err == nil {
		t.Error("Expected error applying an import annotation at type level")
	}
}

func TestBuilderFieldAnnotations(t *testing.T) {
	builder := NewRegistrationBuilder("Svc", "p", ".")

	err := builder.ApplyFieldAnnotation("Store", "store.UserStore",
		parseTestAnnotation(t, "//dryioc::import -Key=primary"))
	if err != nil {
		t.Fatal(err)
	}
	err = builder.ApplyFieldAnnotation("Log", "log.Logger",
		parseTestAnnotation(t, "//dryioc::import_external -Impl=log.StdLogger -Constructor=log.Config"))
	if err != nil {
		t.Fatal(err)
	}

	info := builder.Build()
	if len(info.Imports) != 2 {
		t.Fatalf("Expected 2 import sites, got %d", len(info.Imports))
	}

	keyed := info.Imports[0]
	if keyed.External || keyed.Key != "primary" || keyed.FieldName != "Store" {
		t.Errorf("Unexpected keyed import site: %+v", keyed)
	}

	external := info.Imports[1]
	if !external.External || external.Impl != "log.StdLogger" || len(external.Constructor) != 1 {
		t.Errorf("Unexpected external import site: %+v", external)
	}
}

func TestReuseInfoToReuse(t *testing.T) {
	reuse, err := (&ReuseInfo{Kind: "current_scope", ScopeName: "session"}).ToReuse()
	if err != nil {
		t.Fatal(err)
	}
	if name, ok := reuse.ScopedTo(); !ok || name != "session" {
		t.Errorf("Unexpected reuse conversion: %+v", reuse)
	}

	reuse, err = (&ReuseInfo{Kind: "singleton"}).ToReuse()
	if err != nil {
		t.Fatal(err)
	}
	if reuse.Kind != dryioc.ReuseSingleton {
		t.Errorf("Expected singleton, got %s", reuse.Kind)
	}

	if _, err := (&ReuseInfo{Kind: "pooled"}).ToReuse(); err == nil {
		t.Error("Expected error for unknown kind")
	}
}
