package cli

import (
	"fmt"

	"github.com/exileDev/DryIoc/internal/discovery"
	"github.com/exileDev/DryIoc/internal/models"
)

// Runner wires the directory scanner, the annotation discovery and the
// reporter into one discovery run
type Runner struct {
	cfg      Config
	scanner  *DirectoryScanner
	resolver *ModuleResolver
	reporter *Reporter
}

// NewRunner creates a runner for the given configuration
func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:      cfg,
		scanner:  NewDirectoryScanner(),
		resolver: NewModuleResolver(),
		reporter: NewReporter(cfg),
	}
}

// Run scans the configured directories and prints the registration
// manifest. The returned error has already been reported.
func (r *Runner) Run() error {
	dirs, err := r.scanner.ScanDirectories(r.cfg.Directories)
	if err != nil {
		r.reporter.ReportError(err)
		return err
	}
	if len(dirs) == 0 {
		err := fmt.Errorf("no directories matched the given patterns")
		r.reporter.ReportError(err)
		return err
	}

	module, err := r.resolver.Resolve(r.cfg.Module, dirs[0])
	if err != nil {
		r.reporter.ReportError(err)
		return err
	}

	var pkgs []*models.PackageRegistrations
	for _, dir := range dirs {
		pkg, err := discovery.NewScanner().ParseDirectory(dir)
		if err != nil {
			r.reporter.ReportError(err)
			return err
		}
		if len(pkg.Registrations) == 0 {
			continue
		}
		pkgs = append(pkgs, pkg)
	}

	if len(pkgs) == 0 {
		r.reporter.ReportWarning("no dryioc annotations found")
	}

	return r.reporter.PrintManifest(module, pkgs)
}
