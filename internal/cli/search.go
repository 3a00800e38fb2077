// Package cli renders dictionary lookups for the terminal.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Searcher is the lookup operation the CLI drives.
type Searcher interface {
	Search(ctx context.Context, word string) ([]string, error)
}

// SearchCLI prints lookup results to a writer.
type SearchCLI struct {
	searcher Searcher
	out      io.Writer
}

// NewSearchCLI creates a new SearchCLI.
func NewSearchCLI(searcher Searcher, out io.Writer) *SearchCLI {
	return &SearchCLI{
		searcher: searcher,
		out:      out,
	}
}

// Run looks up word and prints each definition on its own line. Zero matches
// is not an error; it prints a notice instead.
func (c *SearchCLI) Run(ctx context.Context, word string) error {
	definitions, err := c.searcher.Search(ctx, word)
	if err != nil {
		return fmt.Errorf("searcher.Search > %w", err)
	}

	if len(definitions) == 0 {
		if _, err := color.New(color.FgYellow).Fprintf(c.out, "No definitions found for %q\n", word); err != nil {
			return fmt.Errorf("write no-match notice: %w", err)
		}
		return nil
	}

	for i, definition := range definitions {
		if _, err := color.New(color.FgGreen).Fprintf(c.out, "%d: %s\n", i+1, definition); err != nil {
			return fmt.Errorf("write definition: %w", err)
		}
	}
	return nil
}
