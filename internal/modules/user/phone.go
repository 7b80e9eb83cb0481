package user

import "strings"

// NormalizePhone reduces an Argentine phone number to the canonical
// 549-prefixed digit form so lookups and uniqueness work regardless of how
// the customer typed it.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	// Already canonical: 549 + 10-digit local number.
	if strings.HasPrefix(cleaned, "549") && len(cleaned) == 13 {
		return cleaned
	}

	// Drop the long-distance leading zero (03491...).
	if strings.HasPrefix(cleaned, "0") {
		cleaned = cleaned[1:]
	}

	// Bare 10-digit local number (3491...).
	if len(cleaned) == 10 {
		return "549" + cleaned
	}

	// Mobile prefix without country code (93491...).
	if len(cleaned) == 11 && strings.HasPrefix(cleaned, "9") {
		return "54" + cleaned
	}

	return cleaned
}
