// Package archive writes the zip container a packaged document ships in.
//
// The consuming player expects plainly stored entries: no compression and no
// zip64 extensions, so every file is written with the Store method.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

// File is one entry of the container.
type File struct {
	Name string
	Data []byte
}

// Write emits the files to w as a stored (uncompressed) zip stream, in the
// order given.
func Write(w io.Writer, files []File) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		hdr := &zip.FileHeader{
			Name:   f.Name,
			Method: zip.Store,
		}
		entry, err := zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("create entry %q: %w", f.Name, err)
		}
		if _, err := entry.Write(f.Data); err != nil {
			return fmt.Errorf("write entry %q: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}

// WriteFile writes the container to path, replacing any existing file.
func WriteFile(path string, files []File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive %q: %w", path, err)
	}
	if err := Write(out, files); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
