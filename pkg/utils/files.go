package utils

import (
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// LoadFile reads the given file into memory, decompressing it first if
// the extension indicates a compressed archive. Archives are expected to
// contain the ROM image as their first entry.
func LoadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var decoder io.Reader
	switch filepath.Ext(filename) {
	case ".gz":
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		decoder, err = gzip.NewReader(f)
	case ".zip":
		zipReader, zErr := zip.NewReader(f, int64(len(data)))
		if zErr != nil {
			return nil, zErr
		}
		decoder, err = zipReader.File[0].Open()
	case ".7z":
		r, zErr := sevenzip.NewReader(f, int64(len(data)))
		if zErr != nil {
			return nil, zErr
		}
		decoder, err = r.File[0].Open()
	default:
		// treat anything else as a raw image
		return data, nil
	}
	if err != nil {
		return nil, err
	}

	return io.ReadAll(decoder)
}
