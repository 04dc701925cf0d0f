package git

import (
	"os/exec"
	"sync"
	"time"
)

// CachedService wraps a Service implementation with a TTL-based cache for
// expensive read operations. Write operations (Stage, Commit, etc.)
// automatically invalidate the cache so the next read is fresh.
//
// This matters for refresh storms: a single refresh cycle hits Status,
// Head, AheadBehind and IsClean, and a burst of watcher events can queue
// several refresh cycles back to back. Without caching each cycle spawns
// a handful of git subprocesses; with it, each query hits git once per
// TTL window.
type CachedService struct {
	inner Service
	ttl   time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// maxCacheEntries caps the number of entries in the cache. When exceeded,
// expired entries are evicted first; if that isn't enough the cache is
// flushed entirely. The TTL is short, so this only happens if something
// is wrong.
const maxCacheEntries = 64

type cacheEntry struct {
	val    interface{}
	err    error
	expiry time.Time
}

// Compile-time check.
var _ Service = (*CachedService)(nil)

// NewCachedService wraps an existing Service with a TTL cache.
// Recommended TTL: 1-2 seconds, so that within a single refresh cycle
// each query only hits git once.
func NewCachedService(inner Service, ttl time.Duration) *CachedService {
	return &CachedService{
		inner: inner,
		ttl:   ttl,
		cache: make(map[string]cacheEntry, 8),
	}
}

// Invalidate clears all cached entries. Called after any write operation.
func (c *CachedService) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry, 8)
	c.mu.Unlock()
}

func (c *CachedService) get(key string) (val interface{}, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.cache[key]
	if !found || time.Now().After(e.expiry) {
		return nil, false, nil
	}
	return e.val, true, e.err
}

func (c *CachedService) set(key string, val interface{}, err error) {
	c.mu.Lock()
	if len(c.cache) >= maxCacheEntries {
		now := time.Now()
		for k, e := range c.cache {
			if now.After(e.expiry) {
				delete(c.cache, k)
			}
		}
		if len(c.cache) >= maxCacheEntries {
			c.cache = make(map[string]cacheEntry, 8)
		}
	}
	c.cache[key] = cacheEntry{val: val, err: err, expiry: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// invalidateAndReturn is a helper for write methods.
func (c *CachedService) invalidateAndReturn(err error) error {
	if err == nil {
		c.Invalidate()
	}
	return err
}

// ── Repository info (cached reads) ──────────────────────────────────────────

// RepoRoot delegates to the inner service.
func (c *CachedService) RepoRoot() string { return c.inner.RepoRoot() }

// GitDir delegates to the inner service.
func (c *CachedService) GitDir() string { return c.inner.GitDir() }

// Head returns the current HEAD ref (cached).
func (c *CachedService) Head() (string, error) {
	if v, ok, err := c.get("head"); ok {
		return v.(string), err
	}
	v, err := c.inner.Head()
	c.set("head", v, err)
	return v, err
}

// AheadBehind delegates to the inner service (cached).
func (c *CachedService) AheadBehind() (int, int, error) {
	type ab struct{ a, b int }
	if v, ok, err := c.get("aheadbehind"); ok {
		r := v.(ab)
		return r.a, r.b, err
	}
	a, b, err := c.inner.AheadBehind()
	c.set("aheadbehind", ab{a, b}, err)
	return a, b, err
}

// IsClean reports whether the worktree is clean (cached).
func (c *CachedService) IsClean() (bool, error) {
	if v, ok, err := c.get("isclean"); ok {
		return v.(bool), err
	}
	v, err := c.inner.IsClean()
	c.set("isclean", v, err)
	return v, err
}

// ── Status (cached) ─────────────────────────────────────────────────────────

// Status delegates to the inner service (cached).
func (c *CachedService) Status() (*StatusResult, error) {
	if v, ok, err := c.get("status"); ok {
		return v.(*StatusResult), err
	}
	v, err := c.inner.Status()
	c.set("status", v, err)
	return v, err
}

// ── Write operations (invalidate cache) ─────────────────────────────────────

// Stage stages paths and invalidates the cache.
func (c *CachedService) Stage(paths ...string) error {
	return c.invalidateAndReturn(c.inner.Stage(paths...))
}

// StageModified stages all modified tracked files and invalidates the cache.
func (c *CachedService) StageModified() (int, error) {
	n, err := c.inner.StageModified()
	if err == nil {
		c.Invalidate()
	}
	return n, err
}

// Unstage unstages paths and invalidates the cache.
func (c *CachedService) Unstage(paths ...string) error {
	return c.invalidateAndReturn(c.inner.Unstage(paths...))
}

// Discard discards changes in paths and invalidates the cache.
func (c *CachedService) Discard(paths ...string) error {
	return c.invalidateAndReturn(c.inner.Discard(paths...))
}

// Commit creates a commit and invalidates the cache.
func (c *CachedService) Commit(message string) error {
	return c.invalidateAndReturn(c.inner.Commit(message))
}

// ── Content (not cached, large and per-file) ────────────────────────────────

// Diff delegates to the inner service (not cached).
func (c *CachedService) Diff(staged bool, path string) (string, error) {
	return c.inner.Diff(staged, path)
}

// UntrackedContent delegates to the inner service (not cached).
func (c *CachedService) UntrackedContent(path string) (string, error) {
	return c.inner.UntrackedContent(path)
}

// InteractiveStageCmd delegates to the inner service. The cache is
// invalidated here rather than after the subprocess exits; the caller
// refreshes anyway once the interactive session ends.
func (c *CachedService) InteractiveStageCmd(path string) *exec.Cmd {
	c.Invalidate()
	return c.inner.InteractiveStageCmd(path)
}
