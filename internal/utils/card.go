package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// DigitsOnly strips spaces and dashes typed into the card number field.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CardLast4 returns the last four digits of a card number, or "" if there are fewer.
func CardLast4(cardNumber string) string {
	digits := DigitsOnly(cardNumber)
	if len(digits) < 4 {
		return ""
	}
	return digits[len(digits)-4:]
}

// ParseExpiry accepts MM/YY, MM/YYYY and MM-YY.
func ParseExpiry(expiry string) (month, year int64, err error) {
	parts := strings.FieldsFunc(strings.TrimSpace(expiry), func(r rune) bool {
		return r == '/' || r == '-' || r == ' '
	})
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid expiry %q", expiry)
	}
	month, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid expiry month %q", parts[0])
	}
	year, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid expiry year %q", parts[1])
	}
	if len(parts[1]) == 2 {
		year += 2000
	}
	return month, year, nil
}
