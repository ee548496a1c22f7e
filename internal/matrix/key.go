// Package matrix partitions scenarios into the Business Value × Feasibility
// priority matrix and describes each cell.
package matrix

import (
	"errors"
	"strings"
)

// ErrInvalidKey is returned by ParseKey for strings that are not "BV-Feas".
var ErrInvalidKey = errors.New("invalid quadrant key")

// Key identifies a matrix cell.
type Key struct {
	BusinessValue string
	Feasibility   string
}

// NewKey builds a key from its two axis values.
func NewKey(bv, feas string) Key {
	return Key{BusinessValue: bv, Feasibility: feas}
}

// String serialises the key as "BV-Feas".
func (k Key) String() string {
	return k.BusinessValue + "-" + k.Feasibility
}

// ParseKey parses "BV-Feas". Both parts must be non-empty and separated by
// exactly one dash. The levels themselves are not checked.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Key{}, ErrInvalidKey
	}
	return Key{BusinessValue: parts[0], Feasibility: parts[1]}, nil
}
