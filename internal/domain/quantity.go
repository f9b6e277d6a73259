package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("invalid quantity")

var maxQuantity = decimal.NewFromInt(math.MaxInt32)

// Quantity is a strictly positive integer number of units.
type Quantity int

func NewQuantity(n int) (Quantity, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d is not positive", ErrInvalidQuantity, n)
	}
	return Quantity(n), nil
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] == '"' {
		return fmt.Errorf("%w: %s is not a number", ErrInvalidQuantity, string(data))
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil || num == "" {
		return fmt.Errorf("%w: %s", ErrInvalidQuantity, string(data))
	}

	d, err := decimal.NewFromString(num.String())
	if err != nil || !d.IsInteger() {
		return fmt.Errorf("%w: %s is not an integer", ErrInvalidQuantity, num)
	}
	if !d.IsPositive() {
		return fmt.Errorf("%w: %s is not positive", ErrInvalidQuantity, num)
	}
	if d.GreaterThan(maxQuantity) {
		return fmt.Errorf("%w: %s is too large", ErrInvalidQuantity, num)
	}

	parsed, err := NewQuantity(int(d.IntPart()))
	if err != nil {
		return err
	}

	*q = parsed
	return nil
}
