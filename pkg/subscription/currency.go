package subscription

import (
	"fmt"
	"strings"
)

// Currency is one of the fixed set of supported charge denominations.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	TRY Currency = "TRY"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
)

// DefaultCurrency is used when settings carry no preference.
const DefaultCurrency = USD

var symbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	GBP: "£",
	TRY: "₺",
	JPY: "¥",
	CAD: "C$",
	AUD: "A$",
}

// Currencies returns the supported set in display order.
func Currencies() []Currency {
	return []Currency{USD, EUR, GBP, TRY, JPY, CAD, AUD}
}

// ParseCurrency converts a string to a Currency, defaulting empty to USD.
func ParseCurrency(raw string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(raw)))
	if c == "" {
		return DefaultCurrency, nil
	}
	if c.Valid() {
		return c, nil
	}
	return DefaultCurrency, fmt.Errorf("subscription: unknown currency %q", raw)
}

func (c Currency) Valid() bool {
	_, ok := symbols[c]
	return ok
}

// Symbol returns the display prefix for the currency.
func (c Currency) Symbol() string {
	if s, ok := symbols[c]; ok {
		return s
	}
	return string(c)
}

// Format renders an amount with the currency symbol.
func (c Currency) Format(amount float64) string {
	if c == JPY {
		return fmt.Sprintf("%s%.0f", c.Symbol(), amount)
	}
	return fmt.Sprintf("%s%.2f", c.Symbol(), amount)
}
