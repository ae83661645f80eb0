package cli

import (
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/exileDev/DryIoc/internal/errors"
)

// DirectoryScanner expands the directory arguments into the concrete list
// of package directories to scan. Go-style "./..." patterns are resolved
// through the packages loader; plain directories pass through as-is.
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanDirectories resolves the given directories and patterns into
// absolute package directories, deduplicated and sorted
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	seen := make(map[string]struct{})
	var dirs []string

	add := func(dir string) {
		if _, dup := seen[dir]; dup {
			return
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}

	for _, rootDir := range rootDirs {
		if isRecursivePattern(rootDir) {
			expanded, err := s.expandPattern(rootDir)
			if err != nil {
				return nil, err
			}
			for _, dir := range expanded {
				add(dir)
			}
			continue
		}

		cleanPath, err := filepath.Abs(rootDir)
		if err != nil {
			return nil, errors.WrapFileSystemError("resolve", rootDir, err)
		}
		add(cleanPath)
	}

	sort.Strings(dirs)
	return dirs, nil
}

// expandPattern resolves a ./... pattern into the directories of the
// packages it matches
func (s *DirectoryScanner) expandPattern(pattern string) ([]string, error) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedFiles}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, errors.WrapFileSystemError("expand", pattern, err)
	}

	var dirs []string
	for _, pkg := range pkgs {
		if len(pkg.GoFiles) == 0 {
			continue
		}
		dirs = append(dirs, filepath.Dir(pkg.GoFiles[0]))
	}
	return dirs, nil
}

// isRecursivePattern reports whether the argument is a Go-style recursive
// package pattern
func isRecursivePattern(dir string) bool {
	return dir == "..." || strings.HasSuffix(dir, "/...")
}
