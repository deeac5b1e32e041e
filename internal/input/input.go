// Package input validates raw user input before it reaches the session.
package input

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrInvalidLabel is returned for labels that are not exactly one
	// non-blank character.
	ErrInvalidLabel = errors.New("input: label must be exactly one non-blank character")

	// ErrInvalidWeight is returned for weights that are not a signed integer.
	ErrInvalidWeight = errors.New("input: weight must be an integer")
)

var weightPattern = regexp.MustCompile(`^[+-]?\d+$`)

// ValidateLabel checks that label is a single non-blank character.
func ValidateLabel(label string) error {
	if utf8.RuneCountInString(label) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	r, _ := utf8.DecodeRuneInString(label)
	if r == utf8.RuneError || unicode.IsSpace(r) {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}

	return nil
}

// ParseWeight parses a weight. A sign is accepted so that negative values
// reach the graph store, which rejects them.
func ParseWeight(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if !weightPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, s)
	}
	w, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidWeight, s, err)
	}

	return w, nil
}
