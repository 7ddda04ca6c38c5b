// Package numwords renders integers as Indian-English cardinal words
// using the lakh/crore grouping, for the "net pay in words" line on
// salary slips.
package numwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// upToHundred renders n in [0, 99].
func upToHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + "-" + ones[n%10]
}

// upToThousand renders n in [0, 999].
func upToThousand(n int64) string {
	if n < 100 {
		return upToHundred(n)
	}
	s := ones[n/100] + " hundred"
	if n%100 != 0 {
		s += " and " + upToHundred(n%100)
	}
	return s
}

// Cardinal renders n using Indian numbering. Groups above a thousand are
// two digits wide (lakh = 1e5, crore = 1e7); the crore group recurses so
// arbitrarily large values stay well formed ("one crore crore" territory
// is beyond any salary this system will see, but it does not break).
func Cardinal(n int64) string {
	if n == 0 {
		return "zero"
	}
	if n < 0 {
		return "minus " + Cardinal(-n)
	}

	var parts []string
	if n >= 1e7 {
		parts = append(parts, Cardinal(n/1e7)+" crore")
		n %= 1e7
	}
	if n >= 1e5 {
		parts = append(parts, upToHundred(n/1e5)+" lakh")
		n %= 1e5
	}
	if n >= 1000 {
		parts = append(parts, upToHundred(n/1000)+" thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, upToThousand(n))
	}
	return strings.Join(parts, ", ")
}

// Rupees renders a monetary amount as words with the rupee unit appended.
// Fractions are truncated to whole rupees.
func Rupees(amount decimal.Decimal) string {
	return Cardinal(amount.IntPart()) + " rupees"
}
