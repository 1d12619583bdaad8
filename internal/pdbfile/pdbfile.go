// Package pdbfile loads coordinate files from disk. Plain files are
// memory-mapped so large structures are handed to the parser without a
// copy; gzipped archive files are inflated into memory.
package pdbfile

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// File is an opened coordinate file. Bytes stays valid until Close.
type File struct {
	data []byte
	mm   mmap.MMap
}

// Open opens a coordinate file. Gzip is detected from the magic bytes, not
// the extension, so renamed archive files still load.
func Open(path string) (*File, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdb file: %w", err)
	}
	defer fp.Close()

	magic := make([]byte, 2)
	if _, err := io.ReadFull(fp, magic); err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read pdb file: %w", err)
	}
	if _, err := fp.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek pdb file: %w", err)
	}

	if magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(fp)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		defer zr.Close()

		var buf bytes.Buffer
		if _, err := buf.ReadFrom(zr); err != nil {
			return nil, fmt.Errorf("inflate pdb file: %w", err)
		}
		return &File{data: buf.Bytes()}, nil
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap pdb file: %w", err)
	}
	return &File{data: mm, mm: mm}, nil
}

// Bytes returns the file contents.
func (f *File) Bytes() []byte {
	return f.data
}

// Close releases the mapping, if any.
func (f *File) Close() error {
	if f.mm == nil {
		return nil
	}
	return f.mm.Unmap()
}
