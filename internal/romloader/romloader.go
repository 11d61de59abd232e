// Package romloader resolves a ROM file on disk into a flat byte slice,
// transparently decompressing the handful of archive formats Game Boy test
// ROMs are commonly distributed in.
package romloader

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
	"github.com/ulikunitz/xz"
)

// Load reads path and decompresses it if its extension names a known
// archive format. Plain .gb/.gbc images, boot ROMs, and anything with an
// unrecognized extension are returned as-is.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("romloader: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("romloader: %w", err)
	}

	switch filepath.Ext(path) {
	case ".gb", ".gbc", ".bin":
		return data, nil
	case ".gz":
		return decompressGzip(data)
	case ".zip":
		return decompressZip(data)
	case ".7z":
		return decompressSevenZip(data)
	case ".xz":
		return decompressXz(data)
	default:
		return data, nil
	}
}

func decompressGzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(&byteReader{data})
	if err != nil {
		return nil, fmt.Errorf("romloader: gzip: %w", err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

func decompressXz(data []byte) ([]byte, error) {
	r, err := xz.NewReader(&byteReader{data})
	if err != nil {
		return nil, fmt.Errorf("romloader: xz: %w", err)
	}
	return io.ReadAll(r)
}

func decompressZip(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(byteReaderAt{data}, int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("romloader: zip: %w", err)
	}
	if len(zr.File) == 0 {
		return nil, fmt.Errorf("romloader: zip archive is empty")
	}
	rc, err := zr.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("romloader: zip: %w", err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func decompressSevenZip(data []byte) ([]byte, error) {
	zr, err := sevenzip.NewReader(byteReaderAt{data}, int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("romloader: 7z: %w", err)
	}
	if len(zr.File) == 0 {
		return nil, fmt.Errorf("romloader: 7z archive is empty")
	}
	rc, err := zr.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("romloader: 7z: %w", err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// byteReader adapts a byte slice to io.Reader without an extra allocation
// for bytes.NewReader's Read-only use sites in this file.
type byteReader struct{ data []byte }

func (r *byteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

// byteReaderAt adapts a byte slice to io.ReaderAt for the archive readers
// that need random access.
type byteReaderAt struct{ data []byte }

func (r byteReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(p, r.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
