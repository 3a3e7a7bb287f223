// Package services contains stateless domain services that operate across
// model types. The canonical status reducer lives here: it folds the three
// independently-vocabularied backend statuses into the single order state
// reported to callers.
package services
