package convert

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ExtractImages pulls embedded media out of an .xlsx export. The file is
// a zip container; LinkedIn puts post images under xl/media/. Extracted
// files are named post_<id>_image_<n>.<ext> with n counting from 1, so
// re-running the converter yields the same names.
func ExtractImages(xlsxPath, outDir, postID string) ([]string, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}

	var extracted []string
	counter := 1
	for _, f := range r.File {
		if !strings.Contains(f.Name, "xl/media/") || strings.HasSuffix(f.Name, "/") {
			continue
		}

		ext := strings.TrimPrefix(path.Ext(f.Name), ".")
		if ext == "" {
			ext = "png"
		}
		name := fmt.Sprintf("post_%s_image_%d.%s", postID, counter, ext)

		if err := copyZipFile(f, filepath.Join(outDir, name)); err != nil {
			return extracted, fmt.Errorf("extract %s: %w", f.Name, err)
		}
		extracted = append(extracted, name)
		counter++
	}

	return extracted, nil
}

func copyZipFile(f *zip.File, dst string) error {
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
