// Package ratelimiter provides token bucket rate limiting with pluggable
// storage and HTTP middleware.
//
// A Bucket allows bursts up to Config.Capacity and refills Config.RefillRate
// tokens every Config.RefillInterval. Requests that the bucket cannot cover
// are denied without consuming tokens.
//
// Two stores are provided:
//
//   - MemoryStore keeps buckets in process memory with periodic cleanup.
//   - RedisStore keeps buckets in Redis hashes and applies refill and
//     consumption in a single Lua script, so limits hold across instances.
//
// # Usage
//
//	store := ratelimiter.NewRedisStore(redisClient)
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: 12 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ByIP())).Post("/login", login)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response, and Retry-After when denying.
package ratelimiter
