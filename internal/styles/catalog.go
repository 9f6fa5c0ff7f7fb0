package styles

import (
	"context"
	"log/slog"
	"time"

	"github.com/raolabs/raobot/internal/domain"
	"github.com/raolabs/raobot/internal/storage"
)

// Fetcher retrieves the raw style list from the remote style API. The second
// return value is the server's catalog timestamp, or zero when it did not
// send one.
type Fetcher interface {
	FetchStyles(ctx context.Context) (names []string, ts int64, err error)
}

// Catalog serves the style list: fresh cache first, then the remote API,
// then the built-in fallback. Remote results are cached for a day.
type Catalog struct {
	cache   *storage.StyleCacheRepository
	fetcher Fetcher
	log     *slog.Logger
	now     func() time.Time
}

// NewCatalog constructs a Catalog.
func NewCatalog(cache *storage.StyleCacheRepository, fetcher Fetcher, log *slog.Logger) *Catalog {
	if log == nil {
		log = slog.Default()
	}

	return &Catalog{
		cache:   cache,
		fetcher: fetcher,
		log:     log,
		now:     time.Now,
	}
}

// SetClock overrides the catalog clock. Intended for tests.
func (c *Catalog) SetClock(now func() time.Time) {
	c.now = now
}

// List returns display-form style names. A failed refresh never surfaces as
// an error; the caller always gets a usable list.
func (c *Catalog) List(ctx context.Context) []string {
	doc := c.cache.Get()
	if len(doc.Styles) > 0 && doc.Fresh(c.now().Unix()) {
		return displayAll(doc.Styles)
	}

	if names, ok := c.refresh(ctx); ok {
		return names
	}

	return FallbackStyles()
}

// Refresh drops the cache and reloads from the remote API. Used by the owner
// console.
func (c *Catalog) Refresh(ctx context.Context) ([]string, error) {
	if err := c.cache.Clear(); err != nil {
		return nil, err
	}

	if names, ok := c.refresh(ctx); ok {
		return names, nil
	}

	return FallbackStyles(), nil
}

// Contains reports whether name matches a listed style, comparing slugs so
// "Pixel Art" and "pixel_art" are the same style.
func (c *Catalog) Contains(ctx context.Context, name string) bool {
	want := Slug(name)
	for _, s := range c.List(ctx) {
		if Slug(s) == want {
			return true
		}
	}
	return false
}

func (c *Catalog) refresh(ctx context.Context) ([]string, bool) {
	if c.fetcher == nil {
		return nil, false
	}

	raw, ts, err := c.fetcher.FetchStyles(ctx)
	if err != nil || len(raw) == 0 {
		if err != nil {
			c.log.Warn("style catalog refresh failed", slog.Any("error", err))
		}
		return nil, false
	}

	if ts == 0 {
		ts = c.now().Unix()
	}

	if err := c.cache.Put(domain.StyleCacheDocument{Styles: raw, TS: ts}); err != nil {
		c.log.Warn("failed to persist style cache", slog.Any("error", err))
	}

	return displayAll(raw), true
}

func displayAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		out = append(out, Display(s))
	}
	return out
}
