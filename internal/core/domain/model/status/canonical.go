package status

// Canonical is the single order state derived from the three backend
// vocabularies. It is computed per status query and never stored.
type Canonical int

const (
	CanonicalUnknown Canonical = iota
	CanonicalPending
	CanonicalProcessing
	CanonicalReadyForDispatch
	CanonicalInTransit
	CanonicalDelivered
	CanonicalCancelled
)

func canonicalStrings() map[Canonical]string {
	return map[Canonical]string{
		CanonicalUnknown:          "UNKNOWN",
		CanonicalPending:          "PENDING",
		CanonicalProcessing:       "PROCESSING",
		CanonicalReadyForDispatch: "READY_FOR_DISPATCH",
		CanonicalInTransit:        "IN_TRANSIT",
		CanonicalDelivered:        "DELIVERED",
		CanonicalCancelled:        "CANCELLED",
	}
}

// String returns the canonical state name. Values outside the enum render
// as "UNKNOWN".
func (c Canonical) String() string {
	if str, ok := canonicalStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
