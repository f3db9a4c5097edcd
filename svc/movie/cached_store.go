package movie

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/singleflight"
)

// CacheConfig configures CachedStore.
type CacheConfig struct {
	TTL  time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`
	Size int           `env:"CATALOG_CACHE_SIZE" envDefault:"256"`
}

const loadTimeout = 10 * time.Second

// CacheObserver is told about every cache lookup.
type CacheObserver func(hit bool)

// CacheOption configures a CachedStore.
type CacheOption func(*CachedStore)

// WithCacheObserver registers fn to be called on every lookup.
func WithCacheObserver(fn CacheObserver) CacheOption {
	return func(s *CachedStore) {
		if fn != nil {
			s.observe = fn
		}
	}
}

// CachedStore decorates a Store with an expiring LRU cache.
// Only successful reads are cached; Upsert purges the whole cache.
type CachedStore struct {
	next    Store
	cache   *lru.LRU[string, any]
	group   singleflight.Group
	observe CacheObserver
}

// NewCachedStore wraps next. A non-positive TTL disables expiry.
func NewCachedStore(next Store, cfg CacheConfig, opts ...CacheOption) *CachedStore {
	s := &CachedStore{
		next:    next,
		cache:   lru.NewLRU[string, any](max(cfg.Size, 1), nil, max(cfg.TTL, 0)),
		observe: func(bool) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CachedStore) List(ctx context.Context) ([]Movie, error) {
	movies, err := cached(ctx, s, "list", s.next.List)
	return cloneMovies(movies), err
}

func (s *CachedStore) ByTitle(ctx context.Context, title string) (*Movie, error) {
	m, err := cached(ctx, s, "title:"+title, func(ctx context.Context) (*Movie, error) {
		return s.next.ByTitle(ctx, title)
	})
	return copyMovie(m), err
}

func (s *CachedStore) ByGenre(ctx context.Context, name string) ([]Movie, error) {
	movies, err := cached(ctx, s, "genre:"+name, func(ctx context.Context) ([]Movie, error) {
		return s.next.ByGenre(ctx, name)
	})
	return cloneMovies(movies), err
}

func (s *CachedStore) ByDirector(ctx context.Context, name string) ([]Movie, error) {
	movies, err := cached(ctx, s, "director:"+name, func(ctx context.Context) ([]Movie, error) {
		return s.next.ByDirector(ctx, name)
	})
	return cloneMovies(movies), err
}

func (s *CachedStore) ByID(ctx context.Context, id bson.ObjectID) (*Movie, error) {
	m, err := cached(ctx, s, "id:"+id.Hex(), func(ctx context.Context) (*Movie, error) {
		return s.next.ByID(ctx, id)
	})
	return copyMovie(m), err
}

func (s *CachedStore) Upsert(ctx context.Context, m *Movie) (*Movie, error) {
	stored, err := s.next.Upsert(ctx, m)
	if err != nil {
		return nil, err
	}
	s.Purge()
	return stored, nil
}

// Purge drops every cached entry.
func (s *CachedStore) Purge() {
	s.cache.Purge()
}

// cached serves key from the cache or loads it once for all concurrent callers.
func cached[T any](ctx context.Context, s *CachedStore, key string, load func(context.Context) (T, error)) (T, error) {
	if v, ok := s.cache.Get(key); ok {
		s.observe(true)
		return v.(T), nil
	}
	s.observe(false)

	// The shared load outlives any single caller; each caller stops waiting
	// when its own context is done.
	ch := s.group.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		res, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		s.cache.Add(key, res)
		return res, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(T), nil
	}
}

func cloneMovies(movies []Movie) []Movie {
	if movies == nil {
		return nil
	}
	out := make([]Movie, len(movies))
	for i := range movies {
		out[i] = movies[i].clone()
	}
	return out
}

func copyMovie(m *Movie) *Movie {
	if m == nil {
		return nil
	}
	c := m.clone()
	return &c
}
