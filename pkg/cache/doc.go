// Package cache provides a bounded, thread-safe LRU map used to keep
// per-visitor state in memory without unbounded growth.
//
// Entries are created lazily with GetOrAdd, which makes lookup and creation
// atomic for a key. When the capacity is exceeded the least recently used
// entry is dropped and the eviction callback, if any, runs after the internal
// lock is released, so callbacks may call back into the cache.
//
//	reg := cache.NewLRU[string, *Session](1024, cache.WithEvictCallback(
//		func(id string, s *Session) { s.Close() },
//	))
//	s, created := reg.GetOrAdd(id, func() *Session { return newSession(id) })
package cache
