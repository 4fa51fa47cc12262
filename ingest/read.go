// SPDX-License-Identifier: MIT

package ingest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/lvtad/matrix"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Read parses and canonicalises a table from r.
func Read(r io.Reader, opts ...Option) (*matrix.ContactMatrix, error) {
	m, err := Decode(r, opts...)
	if err != nil {
		return nil, err
	}

	return m.Contacts, nil
}

// Decode is Read that also reports the detected shape and chromosome.
// Gzip-compressed input is detected by its magic bytes.
func Decode(r io.Reader, opts ...Option) (Matrix, error) {
	br := bufio.NewReader(r)
	var src io.Reader = br
	if head, err := br.Peek(len(gzipMagic)); err == nil && bytes.Equal(head, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return Matrix{}, fmt.Errorf("ingest: gzip: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	t, err := Parse(src)
	if err != nil {
		return Matrix{}, err
	}

	return Canonicalize(t, opts...)
}

// ReadFile decodes the table stored at path, plain or gzip-compressed.
func ReadFile(path string, opts ...Option) (Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matrix{}, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	m, err := Decode(f, opts...)
	if err != nil {
		return Matrix{}, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
