// SPDX-License-Identifier: MIT

// Package matrix - Guarded: a *Dense behind a sync.RWMutex.
//
// Dense itself has no locking. Guarded gives shared matrices the
// exclusive-writer discipline that Set, Fill, Assign, SwapRows, SwapColumns
// and Reshape require: View runs under the read lock, Update under the write lock.

package matrix

import "sync"

// Guarded serializes mutation of a shared *Dense.
// The zero value is not usable; construct with NewGuarded.
type Guarded struct {
	mu sync.RWMutex // guards m
	m  *Dense
}

// NewGuarded takes ownership of m. Callers must not keep using m directly.
func NewGuarded(m *Dense) (*Guarded, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("NewGuarded", err)
	}

	return &Guarded{m: m}, nil
}

// View runs fn with shared read access. fn must not mutate or retain m.
func (g *Guarded) View(fn func(m *Dense) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(g.m)
}

// Update runs fn with exclusive access; fn may mutate m in place.
func (g *Guarded) Update(fn func(m *Dense) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(g.m)
}

// Snapshot returns an independent copy taken under the read lock.
func (g *Guarded) Snapshot() *Dense {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m.Clone()
}
