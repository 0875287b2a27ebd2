// Package money provides the minor-unit currency type shared by the catalog,
// cart and checkout packages. Amounts are stored as integer cents so totals
// stay exact under repeated addition and multiplication.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Amount is a monetary value in cents (USD minor units).
type Amount int64

// Cents builds an Amount from a raw cent count.
func Cents(c int64) Amount { return Amount(c) }

// Parse converts a decimal string such as "6.99" or "24" into an Amount.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	var cents int64
	switch len(frac) {
	case 0:
	case 1:
		d, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
		cents = d * 10
	case 2:
		d, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
		cents = d
	default:
		return 0, fmt.Errorf("invalid amount %q: more than two decimal places", s)
	}
	total := dollars*100 + cents
	if neg {
		total = -total
	}
	return Amount(total), nil
}

// MustParse is Parse for static literals; it panics on malformed input.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Mul scales the amount by an integer quantity.
func (a Amount) Mul(qty int) Amount { return a * Amount(qty) }

// Cents returns the raw cent count.
func (a Amount) Cents() int64 { return int64(a) }

// String renders the amount as "$6.99". Negative amounts render as "-$6.99".
func (a Amount) String() string {
	c := int64(a)
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s$%d.%02d", sign, c/100, c%100)
}

// UnmarshalYAML accepts either a decimal string ("6.99") or a bare number so
// catalog and config files can write prices naturally.
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML renders the amount as a decimal string.
func (a Amount) MarshalYAML() (interface{}, error) {
	c := int64(a)
	neg := ""
	if c < 0 {
		neg = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", neg, c/100, c%100), nil
}
