package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRecursivePattern(t *testing.T) {
	assert.True(t, isRecursivePattern("./..."))
	assert.True(t, isRecursivePattern("./internal/..."))
	assert.True(t, isRecursivePattern("..."))
	assert.False(t, isRecursivePattern("./internal"))
	assert.False(t, isRecursivePattern("services"))
}

func TestScanDirectoriesPlainPaths(t *testing.T) {
	scanner := NewDirectoryScanner()
	base := t.TempDir()

	dirs, err := scanner.ScanDirectories([]string{base, base})
	require.NoError(t, err)

	require.Len(t, dirs, 1, "duplicate directories should collapse")
	assert.True(t, filepath.IsAbs(dirs[0]))
}

func TestScanDirectoriesSortsResults(t *testing.T) {
	scanner := NewDirectoryScanner()
	base := t.TempDir()
	a := filepath.Join(base, "a")
	b := filepath.Join(base, "b")

	dirs, err := scanner.ScanDirectories([]string{b, a})
	require.NoError(t, err)
	require.Len(t, dirs, 2)
	assert.Equal(t, a, dirs[0])
	assert.Equal(t, b, dirs[1])
}
