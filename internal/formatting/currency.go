package formatting

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidCurrency = errors.New("invalid currency amount")

// FormatCurrency renders an amount as US dollars: $1,234.56 or -$1,234.56
func FormatCurrency(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(groupThousands(whole))
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatAmount renders a transaction amount for display. Income is prefixed with '+',
// expenses are shown without a sign.
func FormatAmount(amount decimal.Decimal, isDebit bool) string {
	if isDebit {
		return FormatCurrency(amount)
	}
	return "+" + FormatCurrency(amount)
}

// ParseCurrency parses user-entered amounts such as "$1,234.56", "-12", "(45.00)" or "+3.10"
func ParseCurrency(value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, ErrInvalidCurrency
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	switch {
	case strings.HasPrefix(s, "-"):
		negative = !negative
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || strings.ContainsAny(s[:1], "+-") {
		return decimal.Zero, ErrInvalidCurrency
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidCurrency
	}

	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
