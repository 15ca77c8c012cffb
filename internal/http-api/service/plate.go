package service

import (
	"regexp"
	"strings"
)

// plates are uppercase alphanumeric after spaces are stripped
var platePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// NormalizePlate uppercases a license plate and strips spaces. The result is the
// canonical lookup key for vehicles.
func NormalizePlate(plate string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(plate)), " ", "")
}

// ValidPlate reports whether the plate, once normalized, is a plausible license
// plate: non-empty, at most 20 characters, letters and digits only.
func ValidPlate(plate string) bool {
	normalized := NormalizePlate(plate)
	if len(normalized) == 0 || len(normalized) > 20 {
		return false
	}
	return platePattern.MatchString(normalized)
}
