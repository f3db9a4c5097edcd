// Package user owns the identity records of the API: the User document, its
// public Profile projection, input validation and the Store implementations.
//
// # Projection
//
// User carries the bcrypt hash and is never rendered. Every response goes
// through Profile, which has no hash field, so the hash cannot leak by mistake:
//
//	u, err := store.FindByUsername(ctx, "moviefan")
//	if err != nil {
//		return err
//	}
//	return handler.JSON(u.Profile())
//
// # Stores
//
// MongoStore persists users in the "users" collection and relies on a unique
// index on Username (see EnsureIndexes) to reject duplicates atomically.
// MemoryStore implements the same contract for tests and local runs.
//
// Lookups that match nothing return ErrNotFound; duplicate usernames return
// ErrConflict. Favorites have set semantics: adding twice or removing an
// absent id both succeed without change.
package user
