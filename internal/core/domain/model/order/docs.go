// Package order contains the canonical delivery-order model consumed by the
// orchestration layer. Orders arrive through the inbound adapter, carry the
// data needed by all three backend systems, and are never persisted by the
// hub itself; the backends are the source of truth.
package order
