package queries

import (
	"errors"

	"swifthub/internal/pkg/guard"
)

// ErrGetSystemHealthQueryIsNotConstructed signals direct struct
// initialization.
var ErrGetSystemHealthQueryIsNotConstructed = errors.New(
	"GetSystemHealthQuery must be created via NewGetSystemHealthQuery constructor",
)

// GetSystemHealthQuery probes the liveness of every backend system.
type GetSystemHealthQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSystemHealthQuery creates a parameterless health query.
func NewGetSystemHealthQuery() GetSystemHealthQuery {
	return GetSystemHealthQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSystemHealthQuery) Validate() error {
	return q.guard.Validate(ErrGetSystemHealthQueryIsNotConstructed)
}

// GetSystemHealthQueryResponse reports per-system liveness. Overall is UP
// only when every backend answered its probe.
type GetSystemHealthQueryResponse struct {
	Systems   map[string]string
	Overall   string
	Timestamp int64
}
