package payment

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value in hundredths of the currency unit.
type Amount int64

// AmountFromFloat rounds f to two decimals, half away from zero.
func AmountFromFloat(f float64) Amount {
	return Amount(math.Round(f * 100))
}

// ParseAmount parses decimal text such as "49.99", "49,99" or "1200".
// Digits beyond the second decimal are rounded half away from zero.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(strings.Replace(s, ",", ".", 1), ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !allDigits(whole) || !allDigits(frac) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	var units int64
	if whole != "" {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil || n > math.MaxInt64/100-1 {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, s)
		}
		units = n
	}

	var cents int64
	for i := range 2 {
		cents *= 10
		if i < len(frac) {
			cents += int64(frac[i] - '0')
		}
	}
	if len(frac) > 2 && frac[2] >= '5' {
		cents++
	}

	total := units*100 + cents
	if neg {
		total = -total
	}
	return Amount(total), nil
}

// Cents returns the amount in hundredths.
func (a Amount) Cents() int64 {
	return int64(a)
}

// Float64 returns the amount in currency units.
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// String formats the amount with exactly two decimals and a '.' separator.
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
