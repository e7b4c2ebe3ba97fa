package faultbook

import (
	"sync"
	"sync/atomic"
)

// Gatherer accumulates errors that occur across the application, with
// deduplication. The zero value is ready to use but disabled.
type Gatherer struct {
	enabled atomic.Bool
	mu      sync.RWMutex
	errors  []Error
	seen    map[string]bool
}

var globalGatherer = &Gatherer{seen: make(map[string]bool)}

// EnableGatherer enables the global error gatherer.
func EnableGatherer() {
	globalGatherer.enabled.Store(true)
}

// DisableGatherer disables the global error gatherer.
func DisableGatherer() {
	globalGatherer.enabled.Store(false)
}

// GathererEnabled returns true if the global error gatherer is enabled.
func GathererEnabled() bool {
	return globalGatherer.enabled.Load()
}

// AddToGatherer adds an error to the global gatherer if it is enabled.
func AddToGatherer(err error) {
	if !globalGatherer.enabled.Load() || err == nil {
		return
	}
	fbErr, ok := err.(Error)
	if !ok {
		fbErr = newFault(3, err, "")
	}
	globalGatherer.add(fbErr)
}

// GatheredErrors returns a copy of the errors accumulated by the global gatherer.
func GatheredErrors() []Error {
	return globalGatherer.gathered()
}

// ClearGatheredErrors clears the errors accumulated by the global gatherer.
func ClearGatheredErrors() {
	globalGatherer.clear()
}

func (g *Gatherer) add(err Error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seen == nil {
		g.seen = make(map[string]bool)
	}
	key := err.Error()
	if g.seen[key] {
		return
	}
	g.seen[key] = true
	g.errors = append(g.errors, err)
}

func (g *Gatherer) gathered() []Error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	errs := make([]Error, len(g.errors))
	copy(errs, g.errors)
	return errs
}

func (g *Gatherer) clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.errors = nil
	g.seen = make(map[string]bool)
}
