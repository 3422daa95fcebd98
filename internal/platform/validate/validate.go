// Package validate holds the field-format rules shared by the patient and
// doctor domains.
package validate

import "regexp"

// phoneRE accepts an optional leading + and country code 1, then 9-15 digits.
var phoneRE = regexp.MustCompile(`^\+?1?\d{9,15}$`)

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// PhoneMessage names the expected phone format in field errors.
const PhoneMessage = "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed."

// Phone reports whether s is a well-formed phone number.
func Phone(s string) bool {
	return phoneRE.MatchString(s)
}

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailRE.MatchString(s)
}
