package model

import (
	"bytes"
	"encoding/json"
)

// TrackedCurrencies is the fixed set of codes a CurrencyTable may carry, in
// display order.
var TrackedCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CNY", "RUB", "KZT"}

// IsTracked reports whether code belongs to TrackedCurrencies.
func IsTracked(code string) bool {
	for _, c := range TrackedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// Rates maps a tracked currency code to its rate against the table base.
type Rates map[string]float64

// MarshalJSON writes tracked codes in TrackedCurrencies order and skips
// everything else.
func (r Rates) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, code := range TrackedCurrencies {
		rate, ok := r[code]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, _ := json.Marshal(code)
		val, err := json.Marshal(rate)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CurrencyTable is the /api/currency payload.
type CurrencyTable struct {
	Base  string `json:"base"`
	Date  string `json:"date"`
	Rates Rates  `json:"rates"`
}
