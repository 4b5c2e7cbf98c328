package convert

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeWorkbook builds a minimal zip container shaped like an xlsx
// export with media files.
func writeFakeWorkbook(t *testing.T, path string, entries [][2]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		fw, err := w.Create(e[0])
		require.NoError(t, err)
		_, err = fw.Write([]byte(e[1]))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestExtractImages(t *testing.T) {
	dir := t.TempDir()
	wb := filepath.Join(dir, "export.xlsx")
	writeFakeWorkbook(t, wb, [][2]string{
		{"xl/worksheets/sheet1.xml", "<sheet/>"},
		{"xl/media/image1.png", "png-bytes"},
		{"xl/media/image2.jpeg", "jpeg-bytes"},
	})

	out := filepath.Join(dir, "images")
	names, err := ExtractImages(wb, out, "42")
	require.NoError(t, err)
	require.Equal(t, []string{"post_42_image_1.png", "post_42_image_2.jpeg"}, names)

	data, err := os.ReadFile(filepath.Join(out, "post_42_image_1.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestExtractImagesNoMedia(t *testing.T) {
	dir := t.TempDir()
	wb := filepath.Join(dir, "export.xlsx")
	writeFakeWorkbook(t, wb, [][2]string{
		{"xl/worksheets/sheet1.xml", "<sheet/>"},
	})

	names, err := ExtractImages(wb, filepath.Join(dir, "images"), "1")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestExtractImagesBadArchive(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "broken.xlsx")
	require.NoError(t, os.WriteFile(bad, []byte("not a zip"), 0o644))

	_, err := ExtractImages(bad, filepath.Join(dir, "images"), "1")
	assert.Error(t, err)
}
