package compendium

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the primary compendium API base URL.
	DefaultBaseURL = "https://botw-compendium.herokuapp.com/api/v2"
	// DefaultMasterModeURL is the master mode API base URL.
	DefaultMasterModeURL = DefaultBaseURL + "/master_mode"

	defaultTimeout = 30 * time.Second
)

// Client is a compendium API client. It holds a primary endpoint and,
// when master mode is enabled, a second endpoint serving the master mode
// data set.
type Client struct {
	api       *endpoint
	masterAPI *endpoint
	logger    zerolog.Logger
}

// New creates a new compendium client.
func New(logger zerolog.Logger, opts ...Option) (*Client, error) {
	options := &clientOptions{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.baseURL == "" {
		return nil, fmt.Errorf("compendium base URL is required")
	}
	if options.masterMode && options.masterModeURL == "" {
		options.masterModeURL = DefaultMasterModeURL
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	client := &Client{
		api:    newEndpoint(options.baseURL, httpClient, options.userAgent, logger),
		logger: logger,
	}
	if options.masterMode {
		client.masterAPI = newEndpoint(options.masterModeURL, httpClient, options.userAgent, logger)
	}

	return client, nil
}

// MasterModeEnabled reports whether the client was constructed with a
// master mode endpoint.
func (c *Client) MasterModeEnabled() bool {
	return c.masterAPI != nil
}

// GetEntry retrieves a single entry by name. With ModeAuto the primary
// endpoint is tried first, falling back to master mode when enabled.
// ModePrimary and ModeMaster query exactly one endpoint with no
// fallback. A miss returns *EntryNotFoundError.
func (c *Client) GetEntry(ctx context.Context, entry string, mode Mode) (Entry, error) {
	raw, _, err := c.resolveEntry(ctx, entry, mode)
	if err != nil {
		return nil, err
	}

	var result Entry
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to parse entry %q: %w", entry, err)
	}
	return result, nil
}

// GetEntryByID retrieves a single entry by its numeric ID.
func (c *Client) GetEntryByID(ctx context.Context, id int, mode Mode) (Entry, error) {
	return c.GetEntry(ctx, strconv.Itoa(id), mode)
}

// GetCategory retrieves all entries in a category. With master mode
// enabled, the monsters category honors the mode argument: ModeAuto
// merges the primary and master lists, ModePrimary and ModeMaster return
// one side only. Every other category always queries the primary
// endpoint. An invalid category returns *UnknownCategoryError.
func (c *Client) GetCategory(ctx context.Context, category Category, mode Mode) (*CategoryEntries, error) {
	if !category.Valid() {
		return nil, &UnknownCategoryError{Category: string(category)}
	}

	if category == CategoryMonsters {
		return c.getMonsters(ctx, mode)
	}

	raw, err := c.api.request(ctx, "/category/"+string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s: %w", category, err)
	}

	if category == CategoryCreatures {
		var creatures Creatures
		if raw != nil {
			if err := json.Unmarshal(raw, &creatures); err != nil {
				return nil, fmt.Errorf("failed to parse creatures: %w", err)
			}
		}
		return &CategoryEntries{Food: creatures.Food, NonFood: creatures.NonFood}, nil
	}

	entries, err := rawEntries(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse category %s: %w", category, err)
	}
	return &CategoryEntries{Entries: entries}, nil
}

// getMonsters handles the one category that spans both endpoints.
func (c *Client) getMonsters(ctx context.Context, mode Mode) (*CategoryEntries, error) {
	if mode == ModeMaster && c.masterAPI == nil {
		return nil, ErrMasterModeDisabled
	}

	var entries []Entry

	if mode == ModeAuto || mode == ModePrimary {
		raw, err := c.api.request(ctx, "/category/monsters")
		if err != nil {
			return nil, fmt.Errorf("failed to get monsters: %w", err)
		}
		primary, err := rawEntries(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse monsters: %w", err)
		}
		entries = append(entries, primary...)
	}

	if c.masterAPI != nil && (mode == ModeAuto || mode == ModeMaster) {
		raw, err := c.masterAPI.request(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("failed to get master mode monsters: %w", err)
		}
		master, err := rawEntries(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse master mode monsters: %w", err)
		}
		entries = append(entries, master...)
	}

	c.logger.Debug().Int("count", len(entries)).Str("mode", mode.String()).Msg("Retrieved monsters")
	return &CategoryEntries{Entries: entries}, nil
}

// GetAll retrieves the full compendium dump nested by category. With
// ModeAuto on a master mode enabled client, the master monster list is
// appended to the primary dump's Monsters. ModeMaster returns a dump
// with only Monsters populated, since the master endpoint serves a bare
// monster list.
func (c *Client) GetAll(ctx context.Context, mode Mode) (*Compendium, error) {
	if mode == ModeMaster {
		if c.masterAPI == nil {
			return nil, ErrMasterModeDisabled
		}
		monsters, err := c.masterDump(ctx)
		if err != nil {
			return nil, err
		}
		return &Compendium{Monsters: monsters}, nil
	}

	raw, err := c.api.request(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get compendium: %w", err)
	}

	var all Compendium
	if raw != nil {
		if err := json.Unmarshal(raw, &all); err != nil {
			return nil, fmt.Errorf("failed to parse compendium: %w", err)
		}
	}

	if mode == ModeAuto && c.masterAPI != nil {
		monsters, err := c.masterDump(ctx)
		if err != nil {
			return nil, err
		}
		all.Monsters = append(all.Monsters, monsters...)
	}

	return &all, nil
}

// masterDump fetches the master mode endpoint's full dump, which is a
// bare list of monster entries.
func (c *Client) masterDump(ctx context.Context) ([]Entry, error) {
	raw, err := c.masterAPI.request(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get master mode compendium: %w", err)
	}
	monsters, err := rawEntries(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse master mode compendium: %w", err)
	}
	return monsters, nil
}

// GetImage retrieves an image handle for an entry, bound to the endpoint
// the entry was resolved from. Fetching the bytes is deferred to
// EntryImage.Download.
func (c *Client) GetImage(ctx context.Context, entry string, mode Mode) (*EntryImage, error) {
	raw, source, err := c.resolveEntry(ctx, entry, mode)
	if err != nil {
		return nil, err
	}

	var result Entry
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to parse entry %q: %w", entry, err)
	}

	return newEntryImage(result, source, c.endpointFor(source))
}

// resolveEntry locates an entry and reports which endpoint owns it. With
// ModeAuto the primary endpoint is probed first; an entry absent there
// but present on the master endpoint is a master mode entry.
func (c *Client) resolveEntry(ctx context.Context, entry string, mode Mode) (json.RawMessage, Mode, error) {
	if mode == ModeMaster && c.masterAPI == nil {
		return nil, mode, ErrMasterModeDisabled
	}

	path := "/entry/" + url.PathEscape(entry)

	if mode == ModeAuto || mode == ModePrimary {
		raw, err := c.api.request(ctx, path)
		if err != nil {
			return nil, mode, fmt.Errorf("failed to get entry %q: %w", entry, err)
		}
		if raw != nil {
			return raw, ModePrimary, nil
		}
	}

	if c.masterAPI != nil && (mode == ModeAuto || mode == ModeMaster) {
		raw, err := c.masterAPI.request(ctx, path)
		if err != nil {
			return nil, mode, fmt.Errorf("failed to get entry %q: %w", entry, err)
		}
		if raw != nil {
			return raw, ModeMaster, nil
		}
	}

	return nil, mode, &EntryNotFoundError{Entry: entry}
}

// endpointFor maps a resolved source mode back to its endpoint.
func (c *Client) endpointFor(source Mode) *endpoint {
	if source == ModeMaster {
		return c.masterAPI
	}
	return c.api
}

// rawEntries decodes an entry list, tolerating an absent payload.
func rawEntries(raw json.RawMessage) ([]Entry, error) {
	if raw == nil {
		return nil, nil
	}
	return decodeEntries(raw)
}
