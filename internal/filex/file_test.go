package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b", "store.json")

	dir, err := EnsureParentDir(target)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "a", "b"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// idempotent
	_, err = EnsureParentDir(target)
	require.NoError(t, err)
}
