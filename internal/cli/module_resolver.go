package cli

import (
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/exileDev/DryIoc/internal/errors"
)

// ModuleResolver determines the module path the scanned packages belong to
type ModuleResolver struct{}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{}
}

// Resolve returns the override when set, otherwise the module path from
// the nearest go.mod above startDir
func (r *ModuleResolver) Resolve(override, startDir string) (string, error) {
	if override != "" {
		return override, nil
	}

	goModPath, err := r.findGoMod(startDir)
	if err != nil {
		return "", err
	}
	return r.parseModulePath(goModPath)
}

// findGoMod walks up from startDir looking for a go.mod file
func (r *ModuleResolver) findGoMod(startDir string) (string, error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.WrapFileSystemError("resolve", startDir, err)
	}

	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if info, err := os.Stat(goModPath); err == nil && !info.IsDir() {
			return goModPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", errors.Newf(errors.FileSystemErrorCode, "no go.mod found above %s", startDir).
		WithSuggestion("Pass --module to set the module path explicitly")
}

// parseModulePath extracts the module declaration from a go.mod file
func (r *ModuleResolver) parseModulePath(goModPath string) (string, error) {
	content, err := os.ReadFile(goModPath)
	if err != nil {
		return "", errors.WrapFileSystemError("read", goModPath, err)
	}

	modFile, err := modfile.Parse(goModPath, content, nil)
	if err != nil {
		return "", errors.WrapParseError(goModPath, err)
	}
	if modFile.Module == nil {
		return "", errors.Newf(errors.UnknownErrorCode, "no module declaration found in %s", goModPath)
	}

	return modFile.Module.Mod.Path, nil
}
