// Package seed provides the initial dictionary entry sources: a local JSON
// file, an optional remote document, and a built-in fallback set.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

//go:generate mockgen -source=seed.go -destination=../mocks/seed/mock_source.go -package=mock_seed Source

// Entry is a single word/definition pair as it appears in a seed document.
type Entry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// document is the top-level shape of a seed file.
type document struct {
	Words []Entry `json:"words"`
}

// Source loads dictionary entries from somewhere. A Source failing is never
// fatal; the caller falls through to the next source.
type Source interface {
	Load(ctx context.Context) ([]Entry, error)
}

// FileSource reads entries from a local JSON seed file.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and parses the seed file.
func (s *FileSource) Load(_ context.Context) ([]Entry, error) {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}
	return parseDocument(contents)
}

func parseDocument(contents []byte) ([]Entry, error) {
	var doc document
	if err := json.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if doc.Words == nil {
		return nil, fmt.Errorf("seed document has no top-level %q array", "words")
	}
	return doc.Words, nil
}
