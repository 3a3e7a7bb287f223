// Package inmemory provides the in-process correlation store. The hub
// keeps no durable state of its own, so the order to package correlation
// lives in memory for the lifetime of the process.
package inmemory

import (
	"sync"
	"sync/atomic"

	"swifthub/internal/core/ports"
)

// CorrelationStore is a concurrency-safe order→package mapping backed by a
// sync.Map, giving per-key atomic operations without a global lock.
//
// Entries are never removed: an order that was cancelled still resolves to
// the package identifier stored at registration. Staleness after
// cancellation is accepted.
type CorrelationStore struct {
	entries sync.Map // orderID -> packageID
	size    atomic.Int64
}

var _ ports.CorrelationStore = (*CorrelationStore)(nil)

// NewCorrelationStore creates an empty correlation store.
func NewCorrelationStore() *CorrelationStore {
	return &CorrelationStore{}
}

// Put records the package identifier for the order. A repeated registration
// overwrites the previous entry (last-write-wins).
func (s *CorrelationStore) Put(orderID, packageID string) {
	if _, loaded := s.entries.Swap(orderID, packageID); !loaded {
		s.size.Add(1)
	}
}

// Get returns the package identifier registered for the order.
func (s *CorrelationStore) Get(orderID string) (string, bool) {
	v, ok := s.entries.Load(orderID)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Len reports the number of live correlation entries.
func (s *CorrelationStore) Len() int {
	return int(s.size.Load())
}
