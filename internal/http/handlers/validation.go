package handlers

import "regexp"

var (
	nameRe    = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneRe   = regexp.MustCompile(`^[0-9]{10,15}$`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	pincodeRe = regexp.MustCompile(`^[0-9]{4,10}$`)
)

// Field rules the binding tags cannot express. Each check returns the
// message for the first failing rule, or "" when the value passes.

func validateName(name string) string {
	if len(name) < 3 {
		return "Name must be at least 3 characters"
	}
	if !nameRe.MatchString(name) {
		return "Name must contain only alphabets and spaces"
	}
	return ""
}

func validatePhone(phone string) string {
	if !phoneRe.MatchString(phone) {
		return "Phone must be 10-15 digits"
	}
	return ""
}

func validatePassword(password string) string {
	if len(password) < 6 {
		return "Password must be at least 6 characters"
	}
	if !digitRe.MatchString(password) {
		return "Password must contain at least one number"
	}
	return ""
}

func validatePincode(pincode string) string {
	if pincode != "" && !pincodeRe.MatchString(pincode) {
		return "Pincode must be 4-10 digits"
	}
	return ""
}

func validateAddress(address string) string {
	if len(address) > 150 {
		return "Address must not exceed 150 characters"
	}
	return ""
}
