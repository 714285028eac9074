// Package iban normalizes and checks International Bank Account Numbers.
// Checks are advisory: IBAN formats vary per country and payment generation
// must not be blocked for a valid foreign account, so callers log mismatches
// instead of rejecting them.
package iban

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Dutch IBAN shape: NL + 2 check digits + 4-letter bank code + 10-digit account.
var dutchPattern = regexp.MustCompile(`^NL\d{2}[A-Z]{4}\d{10}$`)

// Normalize uppercases the IBAN and strips all whitespace, including internal
// grouping spaces as printed on invoices ("NL25 INGB 0109 1261 22").
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// MatchesDutchFormat reports whether a normalized IBAN has the Dutch shape.
func MatchesDutchFormat(s string) bool {
	return dutchPattern.MatchString(s)
}

// ValidateChecksum verifies the ISO 7064 mod-97 check digits of a normalized
// IBAN: the first four characters move to the end, letters map to 10..35 and
// the resulting number must be ≡ 1 (mod 97).
func ValidateChecksum(s string) error {
	if len(s) < 5 {
		return fmt.Errorf("iban: too short for a checksum (%d characters)", len(s))
	}
	rearranged := s[4:] + s[:4]
	remainder := 0
	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			remainder = (remainder*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			n := int(r-'A') + 10
			remainder = (remainder*100 + n) % 97
		default:
			return fmt.Errorf("iban: invalid character %q", r)
		}
	}
	if remainder != 1 {
		return fmt.Errorf("iban: mod-97 checksum failed for %s", s)
	}
	return nil
}
