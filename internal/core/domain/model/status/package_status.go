package status

import "strings"

// PackageStatus is the WMS package status vocabulary. The warehouse speaks
// uppercase; parsing folds case so "loaded" and "LOADED" are the same value.
type PackageStatus int

const (
	// PackageUnrecognized represents any WMS status string outside the
	// known vocabulary, including the empty string.
	PackageUnrecognized PackageStatus = iota
	PackageReceived
	PackageProcessing
	PackageReadyForLoading
	PackageLoaded
	PackageDispatched
	PackageDelivered
	PackageInWarehouse
	PackageCancelled
)

func packageStatusStrings() map[PackageStatus]string {
	return map[PackageStatus]string{
		PackageReceived:        "RECEIVED",
		PackageProcessing:      "PROCESSING",
		PackageReadyForLoading: "READY_FOR_LOADING",
		PackageLoaded:          "LOADED",
		PackageDispatched:      "DISPATCHED",
		PackageDelivered:       "DELIVERED",
		PackageInWarehouse:     "IN_WAREHOUSE",
		PackageCancelled:       "CANCELLED",
	}
}

// ParsePackageStatus maps a raw WMS status string into the vocabulary,
// case-insensitively. Unrecognized input yields PackageUnrecognized.
func ParsePackageStatus(raw string) PackageStatus {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	for s, str := range packageStatusStrings() {
		if str == normalized {
			return s
		}
	}
	return PackageUnrecognized
}

// String returns the WMS spelling of the status, or "unknown" for
// unrecognized values.
func (s PackageStatus) String() string {
	if str, ok := packageStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
