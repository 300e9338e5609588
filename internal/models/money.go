package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Money is an exact decimal amount. Budgets are tracked in a single
// implicit currency, so no currency code is carried.
//
// Money encodes as a bare number in JSON and YAML so persisted records and
// exports keep the plain numeric layout.
type Money struct {
	Amount decimal.Decimal
}

// NewMoney wraps a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{Amount: amount}
}

// NewMoneyFromInt creates a Money value from a whole amount.
func NewMoneyFromInt(amount int64) Money {
	return Money{Amount: decimal.NewFromInt(amount)}
}

// NewMoneyFromFloat creates a Money value from a float64 amount.
// Note: Use this sparingly as float64 can introduce precision errors
func NewMoneyFromFloat(amount float64) Money {
	return Money{Amount: decimal.NewFromFloat(amount)}
}

// NewMoneyFromString parses a plain decimal string such as "1200.50".
func NewMoneyFromString(amount string) (Money, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string '%s': %w", amount, err)
	}
	return Money{Amount: dec}, nil
}

var currencySymbols = regexp.MustCompile(`CHF|EUR|USD|ARS|[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]`)

// ParseAmount parses user input into Money. Currency symbols, codes and
// whitespace are dropped and apostrophes are thousand separators. When both
// a dot and a comma appear, the last one is the decimal separator
// ("1.234,56", "1,234.56"). A lone comma is a decimal separator when at most
// two digits follow it ("1200,50") and a thousand separator otherwise
// ("1,234").
func ParseAmount(input string) (Money, error) {
	amount := StandardizeAmount(input)
	if amount == "" {
		return Money{}, fmt.Errorf("invalid amount '%s': empty", input)
	}
	return NewMoneyFromString(amount)
}

// StandardizeAmount rewrites a user-formatted amount into the plain form
// accepted by decimal.NewFromString.
func StandardizeAmount(input string) string {
	amount := currencySymbols.ReplaceAllString(input, "")
	amount = strings.ReplaceAll(amount, "'", "")

	hasComma := strings.Contains(amount, ",")
	hasDot := strings.Contains(amount, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(amount, ".") < strings.LastIndex(amount, ",") {
			amount = strings.ReplaceAll(amount, ".", "")
			amount = strings.ReplaceAll(amount, ",", ".")
		} else {
			amount = strings.ReplaceAll(amount, ",", "")
		}
	case hasComma:
		parts := strings.Split(amount, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			amount = strings.Replace(amount, ",", ".", 1)
		} else {
			amount = strings.ReplaceAll(amount, ",", "")
		}
	}
	return amount
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{Amount: decimal.Zero}
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsPositive returns true if the amount is positive
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Neg returns the negated amount
func (m Money) Neg() Money {
	return Money{Amount: m.Amount.Neg()}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{Amount: m.Amount.Sub(other.Amount)}
}

// Mul multiplies the amount by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor)}
}

// Equal compares amounts numerically, so 1.50 equals 1.5.
func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount)
}

// Cmp returns -1 if m < other, 0 if m == other, 1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.Amount.Cmp(other.Amount)
}

// String returns the amount with two decimal places.
func (m Money) String() string {
	return m.Amount.StringFixed(2)
}

// Float64 returns the amount as a float64
// Note: This can introduce precision errors and should be used carefully
func (m Money) Float64() float64 {
	f, _ := m.Amount.Float64()
	return f
}

// MarshalJSON encodes the amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Amount.String()), nil
}

// UnmarshalJSON accepts a JSON number, a quoted number or null.
func (m *Money) UnmarshalJSON(data []byte) error {
	var dec decimal.Decimal
	if err := dec.UnmarshalJSON(data); err != nil {
		return err
	}
	m.Amount = dec
	return nil
}

// MarshalYAML encodes the amount as a YAML number.
func (m Money) MarshalYAML() (interface{}, error) {
	tag := "!!float"
	if m.Amount.IsInteger() {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: m.Amount.String()}, nil
}

// UnmarshalYAML decodes a YAML scalar into the amount.
func (m *Money) UnmarshalYAML(value *yaml.Node) error {
	dec, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", value.Value, err)
	}
	m.Amount = dec
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (m Money) MarshalCSV() (string, error) {
	return m.Amount.StringFixed(2), nil
}
