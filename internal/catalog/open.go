package catalog

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// gzipMagic is the two-byte header of a gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// OpenStars loads a star catalog from a file, decompressing gzip input.
// A missing or unreadable file is fatal.
func OpenStars(path string, opts LoadOptions) (*Catalog, LoadStats, error) {
	opts.Source = filepath.Base(path)

	var (
		cat   *Catalog
		stats LoadStats
	)
	err := withReader(path, func(r io.Reader) error {
		var err error
		cat, stats, err = LoadStars(r, opts)
		return err
	})
	if err != nil {
		return nil, stats, fmt.Errorf("load star catalog: %w", err)
	}
	return cat, stats, nil
}

// OpenFigures loads a constellation figure file, decompressing gzip input.
func OpenFigures(path string) ([]Figure, FigureStats, error) {
	var (
		figures []Figure
		stats   FigureStats
	)
	err := withReader(path, func(r io.Reader) error {
		var err error
		figures, stats, err = LoadFigures(r, filepath.Base(path))
		return err
	})
	if err != nil {
		return nil, stats, fmt.Errorf("load figures: %w", err)
	}
	return figures, stats, nil
}

func withReader(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := Decompress(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer r.Close()

	return fn(r)
}

// Decompress returns a reader over r's content, transparently unwrapping a
// gzip stream. The caller closes the returned reader; closing does not close r.
func Decompress(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek header: %w", err)
	}

	if len(head) == len(gzipMagic) && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return gz, nil
	}
	return io.NopCloser(br), nil
}
