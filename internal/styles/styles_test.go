package styles

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raolabs/raobot/internal/domain"
	"github.com/raolabs/raobot/internal/storage"
)

func TestDisplay(t *testing.T) {
	assert.Equal(t, "Tlingit Art", Display("tlingit_art"))
	assert.Equal(t, "Pixel Art", Display("  pixel   art "))
	assert.Equal(t, "Manga", Display("MANGA"))
	assert.Equal(t, "", Display(""))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "tlingit_art", Slug("Tlingit Art"))
	assert.Equal(t, "line_art", Slug(" Line-Art! "))
	assert.Equal(t, "manga", Slug("manga"))
	assert.Equal(t, "", Slug("  "))
}

type stubFetcher struct {
	names []string
	ts    int64
	err   error
	calls int
}

func (f *stubFetcher) FetchStyles(context.Context) ([]string, int64, error) {
	f.calls++
	return f.names, f.ts, f.err
}

func newTestCatalog(t *testing.T, fetcher Fetcher) (*Catalog, *storage.StyleCacheRepository) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.NewStore(t.TempDir(), log)
	require.NoError(t, err)

	cache, err := storage.NewStyleCacheRepository(store, log)
	require.NoError(t, err)

	return NewCatalog(cache, fetcher, log), cache
}

func TestCatalog_FreshCacheSkipsFetch(t *testing.T) {
	fetcher := &stubFetcher{}
	catalog, cache := newTestCatalog(t, fetcher)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	catalog.SetClock(func() time.Time { return now })

	require.NoError(t, cache.Put(domain.StyleCacheDocument{
		Styles: []string{"pixel_art", "manga"},
		TS:     now.Unix() - 100,
	}))

	names := catalog.List(context.Background())
	assert.Equal(t, []string{"Pixel Art", "Manga"}, names)
	assert.Zero(t, fetcher.calls)
}

func TestCatalog_StaleCacheRefetches(t *testing.T) {
	fetcher := &stubFetcher{names: []string{"watercolor"}, ts: 500}
	catalog, cache := newTestCatalog(t, fetcher)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	catalog.SetClock(func() time.Time { return now })

	require.NoError(t, cache.Put(domain.StyleCacheDocument{
		Styles: []string{"pixel_art"},
		TS:     now.Unix() - domain.StyleCacheTTLSeconds - 1,
	}))

	names := catalog.List(context.Background())
	assert.Equal(t, []string{"Watercolor"}, names)
	assert.Equal(t, 1, fetcher.calls)

	doc := cache.Get()
	assert.Equal(t, []string{"watercolor"}, doc.Styles)
	assert.Equal(t, int64(500), doc.TS)
}

func TestCatalog_FallbackOnFetchError(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("api down")}
	catalog, _ := newTestCatalog(t, fetcher)

	names := catalog.List(context.Background())
	assert.Equal(t, FallbackStyles(), names)
}

func TestCatalog_RefreshClearsCache(t *testing.T) {
	fetcher := &stubFetcher{names: []string{"sticker"}}
	catalog, cache := newTestCatalog(t, fetcher)

	require.NoError(t, cache.Put(domain.StyleCacheDocument{
		Styles: []string{"pixel_art"},
		TS:     time.Now().Unix(),
	}))

	names, err := catalog.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Sticker"}, names)
	assert.Equal(t, []string{"sticker"}, cache.Get().Styles)
}

func TestCatalog_Contains(t *testing.T) {
	catalog, cache := newTestCatalog(t, &stubFetcher{err: errors.New("down")})

	require.NoError(t, cache.Put(domain.StyleCacheDocument{
		Styles: []string{"pixel_art"},
		TS:     time.Now().Unix(),
	}))

	ctx := context.Background()
	assert.True(t, catalog.Contains(ctx, "Pixel Art"))
	assert.True(t, catalog.Contains(ctx, "pixel_art"))
	assert.False(t, catalog.Contains(ctx, "Manga"))
}
