// Package cache provides a generic, thread-safe LRU map.
//
// It is the bounded entry store under the query cache: entries are looked up
// by key, scanned for prefix invalidation with Range and RemoveFunc, and the
// least recently used entry is dropped once capacity is reached.
//
//	lru := cache.NewLRU[string, int](128)
//	lru.Put("a", 1)
//	v, ok := lru.Get("a")
//	lru.RemoveFunc(func(k string, _ int) bool { return strings.HasPrefix(k, "a") })
package cache
