package catalog

import "strings"

// ValidateISBN checks the shape of an ISBN: 13 digits, or 10 characters whose
// first nine are digits and whose check character may be X. Hyphens and
// spaces are ignored. The field is optional, so a blank string is valid.
func ValidateISBN(isbn string) bool {
	if strings.TrimSpace(isbn) == "" {
		return true
	}

	compact := make([]byte, 0, len(isbn))
	for i := 0; i < len(isbn); i++ {
		ch := isbn[i]
		if ch == '-' || ch == ' ' {
			continue
		}
		compact = append(compact, ch)
	}

	switch len(compact) {
	case 13:
		for _, ch := range compact {
			if ch < '0' || ch > '9' {
				return false
			}
		}
		return true
	case 10:
		for _, ch := range compact[:9] {
			if ch < '0' || ch > '9' {
				return false
			}
		}
		last := compact[9]
		return (last >= '0' && last <= '9') || last == 'X' || last == 'x'
	default:
		return false
	}
}
