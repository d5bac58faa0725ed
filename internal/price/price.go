// Package price implements the 7.5 fixed-point decimal format used for
// order prices: up to seven integer digits, exactly five fractional
// digits, strictly positive.
package price

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits carried by every price (§3).
const Scale = 5

// scaleFactor is 10^Scale, used to project a decimal.Decimal onto the
// canonical scaled-int64 representation.
var scaleFactor = decimal.New(1, Scale)

// Price is a strictly positive decimal value stored as an integer scaled
// by 10^Scale. Comparing two Prices is a plain integer comparison, so two
// textually identical 7.5 strings always sort and compare equal — the
// float hazard the spec warns about in §4.2 cannot occur.
type Price int64

var (
	// ErrNotPositive is returned when a parsed price is zero or negative.
	ErrNotPositive = errors.New("price must be strictly positive")
	// ErrFormat is returned when a price string does not fit the 7.5 format.
	ErrFormat = errors.New("price must have up to 7 integer digits and exactly 5 fractional digits")
)

// Parse parses a 7.5-format decimal string into a Price. It rejects values
// with more than seven integer digits, other than exactly five fractional
// digits, or that are not strictly positive.
func Parse(s string) (Price, error) {
	intPart, fracPart, ok := strings.Cut(s, ".")
	if !ok || len(fracPart) != Scale {
		return 0, ErrFormat
	}
	intDigits := strings.TrimPrefix(intPart, "-")
	if len(intDigits) == 0 || len(intDigits) > 7 {
		return 0, ErrFormat
	}
	for _, r := range intDigits {
		if r < '0' || r > '9' {
			return 0, ErrFormat
		}
	}
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, ErrFormat
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if !d.IsPositive() {
		return 0, ErrNotPositive
	}

	scaled := d.Mul(scaleFactor)
	return Price(scaled.IntPart()), nil
}

// String renders the price back to its canonical 7.5 format, e.g.
// "100.00000".
func (p Price) String() string {
	neg := ""
	v := int64(p)
	if v < 0 {
		neg = "-"
		v = -v
	}
	whole := v / 100000
	frac := v % 100000
	return fmt.Sprintf("%s%d.%05d", neg, whole, frac)
}
