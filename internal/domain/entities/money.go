package entities

import (
	"fmt"
	"strings"
)

// Amount is a monetary value in the smallest unit of its currency.
//
// Monetary representation:
//   - Currency is an ISO 4217 code (3 upper-case letters).
//   - Value is a non-negative integer in minor units (cents for EUR, yen for JPY).
type Amount struct {
	Currency string `json:"currency"`
	Value    int64  `json:"value"`
}

// minorUnits lists the currencies whose exponent differs from 2.
var minorUnits = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0,
	"KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "UYI": 0, "VND": 0, "VUV": 0,
	"XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// MinorUnits returns how many decimal places the currency carries.
func MinorUnits(currency string) int32 {
	if n, ok := minorUnits[strings.ToUpper(currency)]; ok {
		return n
	}
	return 2
}

// NewAmount builds an Amount, normalizing the currency code.
func NewAmount(currency string, value int64) Amount {
	return Amount{Currency: strings.ToUpper(strings.TrimSpace(currency)), Value: value}
}

// Validate reports the first problem with the amount, if any.
func (a Amount) Validate(field string) error {
	if len(a.Currency) != 3 {
		return NewValidationError("invalid currency code", field+".currency")
	}
	for _, r := range a.Currency {
		if r < 'A' || r > 'Z' {
			return NewValidationError("invalid currency code", field+".currency")
		}
	}
	if a.Value < 0 {
		return NewValidationError("amount must not be negative", field+".value")
	}
	return nil
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %d", a.Currency, a.Value)
}
