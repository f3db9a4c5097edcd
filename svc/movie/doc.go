// Package movie provides the read-mostly movie catalog.
//
// Store is implemented by MongoStore (the "movies" collection), MemoryStore
// and CachedStore, a decorator that keeps recent lookups in an expiring LRU
// and collapses concurrent misses for the same key into one backend call.
//
// Lookups that match nothing return ErrNotFound, ErrGenreNotFound or
// ErrDirectorNotFound so the HTTP layer can answer with a precise message.
package movie
