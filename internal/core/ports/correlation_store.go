package ports

// CorrelationStore maps order identifiers to the warehouse package
// identifiers assigned at registration time. Implementations must support
// concurrent reads and writes from multiple in-flight order operations.
//
// Semantics: last-write-wins on repeated registration; entries are never
// deleted, so a cancelled order keeps resolving to its package identifier.
type CorrelationStore interface {
	// Put records the package identifier registered for the order.
	Put(orderID, packageID string)

	// Get returns the package identifier registered for the order, and
	// whether a registration exists.
	Get(orderID string) (string, bool)

	// Len reports the number of live correlation entries.
	Len() int
}
