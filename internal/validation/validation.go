package validation

import (
	"regexp"
	"strings"
)

// Maximum accepted input lengths.
const (
	MaxQuadrantLength = 64
	MaxPasswordLength = 256
)

// LevelPattern defines the accepted shape of one axis value in a quadrant key.
var LevelPattern = regexp.MustCompile(`^[A-Za-z0-9_ ]+$`)

// ValidateQuadrantParam checks that a quadrant selection looks like "BV-Feas".
// Unrecognised levels pass; they resolve to the generic descriptor.
func ValidateQuadrantParam(s string) (bool, string) {
	if s == "" {
		return false, "Quadrant is required"
	}
	if len(s) > MaxQuadrantLength {
		return false, "Quadrant is too long"
	}

	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return false, "Quadrant must have the form BusinessValue-Feasibility"
	}
	for _, p := range parts {
		if p == "" || !LevelPattern.MatchString(p) {
			return false, "Quadrant must have the form BusinessValue-Feasibility"
		}
	}

	return true, ""
}

// ValidatePassword checks the submitted login password before comparison.
func ValidatePassword(password string) (bool, string) {
	if password == "" {
		return false, "Password is required"
	}
	if len(password) > MaxPasswordLength {
		return false, "Password is too long"
	}
	return true, ""
}
