package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/exileDev/DryIoc/internal/errors"
	"github.com/exileDev/DryIoc/internal/models"
)

// Reporter renders scan results and errors for the terminal
type Reporter struct {
	verbose bool
	quiet   bool
	jsonOut bool
	out     io.Writer
	errOut  io.Writer
}

// NewReporter creates a reporter from the CLI configuration
func NewReporter(cfg Config) *Reporter {
	return &Reporter{
		verbose: cfg.Verbose,
		quiet:   cfg.Quiet,
		jsonOut: cfg.JSON,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// manifest is the JSON shape of a scan result
type manifest struct {
	Module   string                         `json:"module"`
	Packages []*models.PackageRegistrations `json:"packages"`
}

// PrintManifest renders the discovered registrations
func (r *Reporter) PrintManifest(module string, pkgs []*models.PackageRegistrations) error {
	if r.jsonOut {
		encoder := json.NewEncoder(r.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(manifest{Module: module, Packages: pkgs})
	}

	heading := color.New(color.FgCyan, color.Bold)
	name := color.New(color.FgGreen, color.Bold)
	dim := color.New(color.Faint)

	if !r.quiet {
		heading.Fprintf(r.out, "Module: ")
		fmt.Fprintf(r.out, "%s\n", module)
	}

	total := 0
	for _, pkg := range pkgs {
		if len(pkg.Registrations) == 0 {
			continue
		}

		fmt.Fprintln(r.out)
		heading.Fprintf(r.out, "package %s ", pkg.PackageName)
		dim.Fprintf(r.out, "(%s)\n", pkg.PackagePath)

		for _, reg := range pkg.Registrations {
			total++
			name.Fprintf(r.out, "  %s\n", reg.StructName)
			if r.verbose {
				dim.Fprintf(r.out, "    id:       %s\n", reg.ID)
			}
			for _, export := range reg.Exports {
				fmt.Fprintf(r.out, "    export:   %s\n", describeExport(export))
			}
			if reg.Reuse != nil {
				fmt.Fprintf(r.out, "    reuse:    %s\n", describeReuse(reg.Reuse))
			}
			if reg.Metadata != "" {
				fmt.Fprintf(r.out, "    metadata: %q\n", reg.Metadata)
			}
			for _, site := range reg.Imports {
				fmt.Fprintf(r.out, "    import:   %s\n", describeImport(site))
			}
		}
	}

	if !r.quiet {
		fmt.Fprintf(r.out, "\n%d annotated type(s) found\n", total)
	}
	return nil
}

// ReportWarning prints a warning line
func (r *Reporter) ReportWarning(message string) {
	if r.quiet {
		return
	}
	warn := color.New(color.FgYellow, color.Bold)
	warn.Fprint(r.errOut, "! ")
	fmt.Fprintf(r.errOut, "%s\n", message)
}

// ReportError prints an error with whatever context it carries. A scan
// error list is unpacked so every collected error gets its own lines.
func (r *Reporter) ReportError(err error) {
	if list, ok := err.(*errors.ErrorList); ok {
		if list.Count() > 1 {
			fail := color.New(color.FgRed, color.Bold)
			fail.Fprintf(r.errOut, "%d errors:\n", list.Count())
		}
		for _, item := range list.Errors {
			r.reportOne(item)
		}
		return
	}
	r.reportOne(err)
}

func (r *Reporter) reportOne(err error) {
	fail := color.New(color.FgRed, color.Bold)
	fail.Fprint(r.errOut, "error: ")
	fmt.Fprintf(r.errOut, "%s\n", err.Error())

	rich, ok := err.(errors.DryIocError)
	if !ok {
		return
	}

	if r.verbose {
		if cause := rich.Unwrap(); cause != nil {
			fmt.Fprintf(r.errOut, "  cause: %s\n", cause.Error())
		}
		for key, value := range rich.Context() {
			fmt.Fprintf(r.errOut, "  %s: %v\n", key, value)
		}
	}
	for _, suggestion := range rich.Suggestions() {
		fmt.Fprintf(r.errOut, "  hint: %s\n", suggestion)
	}
}

// describeExport renders one export declaration on a single line
func describeExport(export models.ExportInfo) string {
	var parts []string
	parts = append(parts, export.Shape.String())
	if export.Contract != "" {
		parts = append(parts, "contract="+export.Contract)
	}
	if export.Name != "" {
		parts = append(parts, "name="+export.Name)
	}
	if export.Key != "" {
		parts = append(parts, "key="+export.Key)
	}
	if len(export.Except) > 0 {
		parts = append(parts, "except="+strings.Join(export.Except, ","))
	}
	if export.IncludeNonPublic {
		parts = append(parts, "include-non-public")
	}
	if export.Shape == models.ShapeWrapperExport && export.WrappedArgIndex >= 0 {
		parts = append(parts, fmt.Sprintf("arg-index=%d", export.WrappedArgIndex))
	}
	if export.AlwaysWrapsRequired {
		parts = append(parts, "always-wraps-required")
	}
	return strings.Join(parts, " ")
}

// describeReuse renders the reuse policy on a single line
func describeReuse(reuse *models.ReuseInfo) string {
	if reuse.ScopeName != "" {
		return fmt.Sprintf("%s(%s)", reuse.Kind, reuse.ScopeName)
	}
	return reuse.Kind
}

// describeImport renders one import site on a single line
func describeImport(site models.ImportSiteInfo) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%s (%s)", site.FieldName, site.FieldType))
	if site.External {
		parts = append(parts, "external")
	}
	if site.Key != "" {
		parts = append(parts, "key="+site.Key)
	}
	if site.Contract != "" {
		parts = append(parts, "contract="+site.Contract)
	}
	if site.Impl != "" {
		parts = append(parts, "impl="+site.Impl)
	}
	if len(site.Constructor) > 0 {
		parts = append(parts, "constructor="+strings.Join(site.Constructor, ","))
	}
	if site.Metadata != "" {
		parts = append(parts, fmt.Sprintf("metadata=%q", site.Metadata))
	}
	return strings.Join(parts, " ")
}
