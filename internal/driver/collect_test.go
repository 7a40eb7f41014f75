package driver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.TS"), "")
	writeFile(t, filepath.Join(dir, "a.mjs"), "")
	writeFile(t, filepath.Join(dir, "x.json"), "")
	writeFile(t, filepath.Join(dir, ".git", "hook.js"), "")

	explicit := filepath.Join(dir, "x.json")
	files, err := collectSourceFiles(context.Background(), []string{dir, explicit, dir}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.mjs"),
		filepath.Join(dir, "b.TS"),
		explicit,
	}, files)

	files, err = collectSourceFiles(context.Background(), []string{dir}, []string{".json"})
	require.NoError(t, err)
	require.Equal(t, []string{explicit}, files)
}
