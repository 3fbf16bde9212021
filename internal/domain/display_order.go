package domain

import "fmt"

// DisplayOrder is the positive rank that controls category ordering in
// navigation. Lower values come first.
type DisplayOrder struct {
	value int
}

// NewDisplayOrder creates a DisplayOrder from a positive integer.
func NewDisplayOrder(order int) (DisplayOrder, error) {
	if order <= 0 {
		return DisplayOrder{}, newValidationError(
			"display order",
			"",
			fmt.Sprintf("%d must be greater than zero", order),
		)
	}

	return DisplayOrder{value: order}, nil
}

// Value returns the integer rank.
func (d DisplayOrder) Value() int {
	return d.value
}

// CompareTo returns a negative number when d sorts before other, a positive
// number when it sorts after, and zero when they are equal.
func (d DisplayOrder) CompareTo(other DisplayOrder) int {
	return d.value - other.value
}
