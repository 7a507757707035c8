package models

// Customer identifies who is renting. Customer numbers are digit
// strings so leading zeros survive (e.g. "018974").
type Customer struct {
	Number string
	VIP    bool
}

// ValidCustomerNumber reports whether s is a usable customer number:
// non-empty and digits only.
func ValidCustomerNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
