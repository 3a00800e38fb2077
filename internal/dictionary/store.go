// Package dictionary implements the word-definition store: schema
// initialization, one-time seeding, and the exact-then-prefix lookup.
package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/k-hirata/defstore/internal/seed"
)

// prefixMatchLimit caps phase-two results. Exact matches are uncapped on
// purpose: duplicate words carry distinct definitions and all of them matter.
const prefixMatchLimit = 3

// Store serializes all access to the shared dictionary database behind a
// single lock. It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	repo    EntryRepository
	sources []seed.Source
}

// NewStore creates a Store over the given repository. Seed sources are tried
// in order during Initialize; when none yields entries the built-in fallback
// set is used.
func NewStore(repo EntryRepository, sources ...seed.Source) *Store {
	return &Store{
		repo:    repo,
		sources: sources,
	}
}

// Initialize ensures the schema exists and seeds the dictionary when it is
// empty. It must be called once before Search; any error is fatal to startup.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.CreateSchema(ctx); err != nil {
		return fmt.Errorf("repo.CreateSchema > %w", err)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("repo.Count > %w", err)
	}
	if count > 0 {
		slog.Debug("dictionary already seeded", "entries", count)
		return nil
	}

	entries := s.resolveSeedEntries(ctx)
	if err := s.repo.InsertBatch(ctx, entries); err != nil {
		return fmt.Errorf("repo.InsertBatch > %w", err)
	}
	return nil
}

// resolveSeedEntries picks the first seed source that yields entries, falling
// back to the built-in set. Source failures are silent apart from debug logs;
// the dictionary must be non-empty after initialization no matter what.
func (s *Store) resolveSeedEntries(ctx context.Context) []Entry {
	for _, source := range s.sources {
		loaded, err := source.Load(ctx)
		if err != nil {
			slog.Debug("seed source unavailable", "error", err)
			continue
		}
		if len(loaded) == 0 {
			continue
		}
		slog.Info("loaded dictionary entries from seed source", "entries", len(loaded))
		return toEntries(loaded)
	}

	fallback := seed.Fallback()
	slog.Info("loaded built-in fallback dictionary entries", "entries", len(fallback))
	return toEntries(fallback)
}

// toEntries converts seed pairs to rows, lowercasing every word. Definitions
// are stored exactly as provided.
func toEntries(pairs []seed.Entry) []Entry {
	entries := make([]Entry, 0, len(pairs))
	for _, pair := range pairs {
		entries = append(entries, Entry{
			Word:       strings.ToLower(pair.Word),
			Definition: pair.Definition,
		})
	}
	return entries
}

// Search returns the definitions matching the query: every case-insensitive
// exact match, or, when there is none, up to three prefix matches. Zero
// matches is a success with an empty result, never an error.
func (s *Store) Search(ctx context.Context, query string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil, nil
	}

	definitions, err := s.repo.FindDefinitions(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("repo.FindDefinitions > %w", err)
	}
	if len(definitions) > 0 {
		return definitions, nil
	}

	definitions, err = s.repo.FindDefinitionsByPrefix(ctx, term, prefixMatchLimit)
	if err != nil {
		return nil, fmt.Errorf("repo.FindDefinitionsByPrefix > %w", err)
	}
	return definitions, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("repo.Count > %w", err)
	}
	return count, nil
}
