package progress

import "sync/atomic"

// ViewCache is a generation counter that read-side views (dashboard, due
// lists) compare against to decide whether their cached snapshot is still
// valid. Writers bump the generation instead of tracking which views a
// write affects.
type ViewCache struct {
	gen atomic.Int64
}

// Generation returns the current cache generation.
func (c *ViewCache) Generation() int64 {
	return c.gen.Load()
}

// Invalidate bumps the generation, expiring every snapshot taken before
// the call.
func (c *ViewCache) Invalidate() {
	c.gen.Add(1)
}

// Valid reports whether a snapshot taken at gen is still current.
func (c *ViewCache) Valid(gen int64) bool {
	return c.gen.Load() == gen
}
