package middleware

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFileHash(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.css")
	require.NoError(t, os.WriteFile(tmpFile, []byte("body { color: red; }"), 0644))

	hash := computeFileHash(tmpFile)
	assert.Len(t, hash, 8)
	assert.Equal(t, hash, computeFileHash(tmpFile))

	assert.Empty(t, computeFileHash("non_existent_file.css"))
}

func TestAssetVersions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "landing.js"), []byte("console.log(1)"), 0644))

	InitAssetVersions(dir, "js/landing.js", "css/missing.css")
	ctx := context.Background()

	v := AssetVersion(ctx, "js/landing.js")
	assert.Len(t, v, 8)
	assert.Equal(t, "1", AssetVersion(ctx, "css/missing.css"), "missing files fall back to 1")
	assert.Equal(t, "1", AssetVersion(ctx, "unknown.js"))
	assert.Equal(t, "/static/js/landing.js?v="+v, AssetURL(ctx, "js/landing.js"))
}
