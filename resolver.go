package main

import "context"

// MetaCache memoizes resolved metadata per post id for the lifetime of
// one request. It is owned by a single invocation, never shared between
// requests and never persisted.
type MetaCache struct {
	entries map[int64]PostMeta
}

// NewMetaCache creates an empty per-request cache.
func NewMetaCache() *MetaCache {
	return &MetaCache{entries: make(map[int64]PostMeta)}
}

// Get returns the cached meta for a post, if any.
func (c *MetaCache) Get(postID int64) (PostMeta, bool) {
	meta, ok := c.entries[postID]
	return meta, ok
}

// Put stores the meta for a post, replacing any prior entry.
func (c *MetaCache) Put(postID int64, meta PostMeta) {
	c.entries[postID] = meta
}

// resolveMeta returns the value to render for one meta field of a post:
// cached value first, then the stored override, then the caller's
// fallback (the post's own unmodified field). A store read populates
// the cache so the second field of the same post costs nothing. The
// read path never reaches the orchestrator.
func resolveMeta(ctx context.Context, store MetaStore, cache *MetaCache, postID int64, field, fallback string) (string, error) {
	if meta, ok := cache.Get(postID); ok {
		if v := meta.Field(field); v != "" {
			return v, nil
		}
		return fallback, nil
	}
	meta, err := store.GetMeta(ctx, postID)
	if err != nil {
		return "", err
	}
	cache.Put(postID, meta)
	if v := meta.Field(field); v != "" {
		return v, nil
	}
	return fallback, nil
}
