package domain

import (
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   Amount
	Currency currency.Unit
}

func EUR(amount Amount) Money {
	return Money{Amount: amount, Currency: currency.EUR}
}
