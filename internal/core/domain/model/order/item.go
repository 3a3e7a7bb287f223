package order

import (
	"fmt"

	"swifthub/internal/pkg/errs"
)

// Item is a single line of a DeliveryOrder. It is owned by exactly one
// order and immutable once set.
type Item struct {
	itemID       string
	description  string
	quantity     int
	unitWeightKg float64
}

// NewItem creates a validated order item. Quantity and unit weight must be
// non-negative.
func NewItem(itemID, description string, quantity int, unitWeightKg float64) (Item, error) {
	if itemID == "" {
		return Item{}, errs.NewValueIsRequiredError("itemId")
	}
	if quantity < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater or equal to 0", quantity))
	}
	if unitWeightKg < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%v is not greater or equal to 0", unitWeightKg))
	}

	return Item{
		itemID:       itemID,
		description:  description,
		quantity:     quantity,
		unitWeightKg: unitWeightKg,
	}, nil
}

// ItemID returns the item identifier.
func (i Item) ItemID() string {
	return i.itemID
}

// Description returns the item description.
func (i Item) Description() string {
	return i.description
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitWeightKg returns the weight of a single unit in kilograms.
func (i Item) UnitWeightKg() float64 {
	return i.unitWeightKg
}
