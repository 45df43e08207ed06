package compendium

import "context"

// API defines the interface for compendium operations. *Client satisfies
// it; consumers can mock it in tests.
type API interface {
	// GetEntry retrieves a single entry by name
	GetEntry(ctx context.Context, entry string, mode Mode) (Entry, error)

	// GetEntryByID retrieves a single entry by its numeric ID
	GetEntryByID(ctx context.Context, id int, mode Mode) (Entry, error)

	// GetCategory retrieves all entries in a category
	GetCategory(ctx context.Context, category Category, mode Mode) (*CategoryEntries, error)

	// GetAll retrieves the full compendium dump nested by category
	GetAll(ctx context.Context, mode Mode) (*Compendium, error)

	// GetImage retrieves an image handle for an entry
	GetImage(ctx context.Context, entry string, mode Mode) (*EntryImage, error)
}

var _ API = (*Client)(nil)
