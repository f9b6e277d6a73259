package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidVatRate = errors.New("invalid vat rate")

// VatRate is a VAT percentage. Only the rates below are allowed.
type VatRate int

const (
	Vat0  VatRate = 0
	Vat4  VatRate = 4
	Vat10 VatRate = 10
	Vat22 VatRate = 22
)

var onePercent = decimal.New(1, -2)

func ParseVatRate(n int) (VatRate, error) {
	rate := VatRate(n)
	if !rate.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVatRate, n)
	}
	return rate, nil
}

func (r VatRate) Valid() bool {
	switch r {
	case Vat0, Vat4, Vat10, Vat22:
		return true
	}
	return false
}

func (r *VatRate) UnmarshalJSON(data []byte) error {
	var n *int
	if err := json.Unmarshal(data, &n); err != nil || n == nil {
		return fmt.Errorf("%w: %s", ErrInvalidVatRate, string(data))
	}

	parsed, err := ParseVatRate(*n)
	if err != nil {
		return err
	}

	*r = parsed
	return nil
}

// VatAmount is net * rate * 0.01, exact and unrounded.
func VatAmount(net Amount, rate VatRate) Amount {
	return net.Mul(decimal.NewFromInt(int64(rate))).Mul(onePercent)
}
