package archive_test

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtgfx/gtgraphics/internal/archive"
)

func TestWriteStoresEntriesUncompressed(t *testing.T) {
	var buf bytes.Buffer
	err := archive.Write(&buf, []archive.File{
		{Name: "document.xml", Data: []byte("<Composition />")},
		{Name: "resources.xml", Data: []byte("<Resources />")},
	})
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	assert.Equal(t, "document.xml", zr.File[0].Name)
	assert.Equal(t, "resources.xml", zr.File[1].Name)
	for _, f := range zr.File {
		assert.Equal(t, zip.Store, f.Method, f.Name)
	}

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "<Composition />", string(data))
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.gtzip")
	require.NoError(t, archive.WriteFile(path, []archive.File{
		{Name: "document.xml", Data: []byte("x")},
	}))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 1)
	assert.Equal(t, "document.xml", zr.File[0].Name)
}
