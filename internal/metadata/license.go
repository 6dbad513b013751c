package metadata

import "github.com/github/go-spdx/v2/spdxexp"

// ValidLicense reports whether license is a known SPDX identifier or
// expression. PKGBUILDs also accept custom identifiers, so callers treat a
// false return as a warning rather than an error.
func ValidLicense(license string) bool {
	if license == "" {
		return false
	}
	valid, _ := spdxexp.ValidateLicenses([]string{license})
	return valid
}
