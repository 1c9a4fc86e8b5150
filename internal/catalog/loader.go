// Folio - Book Recommendations and Cover Resolution
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/folio/internal/logging"
)

// Artifact file names inside the data directory.
const (
	BooksFile      = "books.json"
	IndexFile      = "index.json"
	SimilarityFile = "similarity.json"
	PopularFile    = "popular.json"
)

// Snapshot is the immutable data set the service answers from.
type Snapshot struct {
	Catalog *Catalog
	Index   *Index
	Matrix  *Matrix
	Popular []Book
}

// LoadDir reads all artifacts from dir. A missing popular.json yields an
// empty popular list; any other missing or malformed artifact is an error.
func LoadDir(dir string) (*Snapshot, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads all artifacts from fsys.
func LoadFS(fsys fs.FS) (*Snapshot, error) {
	logger := logging.WithComponent("catalog")

	var books []Book
	if err := readJSON(fsys, BooksFile, &books); err != nil {
		return nil, err
	}

	var titles []string
	if err := readJSON(fsys, IndexFile, &titles); err != nil {
		return nil, err
	}
	index, err := NewIndex(titles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", IndexFile, err)
	}

	var rows [][]float64
	if err := readJSON(fsys, SimilarityFile, &rows); err != nil {
		return nil, err
	}
	matrix, err := NewMatrix(rows, index.Len())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SimilarityFile, err)
	}

	var popular []Book
	if err := readJSON(fsys, PopularFile, &popular); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		logger.Warn().Msg("popular.json not found, popular list is empty")
		popular = []Book{}
	}

	snap := &Snapshot{
		Catalog: New(books),
		Index:   index,
		Matrix:  matrix,
		Popular: popular,
	}

	missing := 0
	for _, t := range titles {
		if _, ok := snap.Catalog.ByTitle(t); !ok {
			missing++
		}
	}
	if missing > 0 {
		logger.Warn().Int("titles", missing).Msg("index titles without a catalog row")
	}

	logger.Info().
		Int("books", snap.Catalog.Len()).
		Int("titles", index.Len()).
		Int("popular", len(popular)).
		Msg("Catalog loaded")

	return snap, nil
}

func readJSON(fsys fs.FS, name string, v interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
