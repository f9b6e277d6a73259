package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a non-negative decimal quantity of money.
// The zero value is a valid zero amount.
type Amount struct {
	d decimal.Decimal
}

var ZeroAmount = Amount{}

func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	return NewAmount(d)
}

func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func NewAmount(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, d.String())
	}

	return Amount{d: d}, nil
}

func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Mul multiplies by a non-negative factor.
func (a Amount) Mul(factor decimal.Decimal) Amount {
	return Amount{d: a.d.Mul(factor)}
}

func (a Amount) MulInt(n int64) Amount {
	return a.Mul(decimal.NewFromInt(n))
}

func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

// String returns the canonical form: base 10, no exponent, trailing zeros trimmed.
func (a Amount) String() string {
	return a.d.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil || s == nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, string(data))
	}

	parsed, err := ParseAmount(*s)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}
