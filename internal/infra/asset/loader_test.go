// internal/infra/asset/loader_test.go
package asset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nftdom "github.com/ZYJLiu/token-metadata/internal/domain/nft"
)

var gifHeader = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestLoad(t *testing.T) {
	p := writeFile(t, "update.gif", gifHeader)

	f, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "update.gif", f.Name)
	assert.Equal(t, "image/gif", f.ContentType)
	assert.Equal(t, gifHeader, f.Data)
}

func TestLoad_SniffsUnknownExtension(t *testing.T) {
	p := writeFile(t, "image.unknownext", gifHeader)

	f, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "image/gif", f.ContentType)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.gif"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "empty.gif", nil))
	assert.ErrorIs(t, err, nftdom.ErrEmptyFile)
}
