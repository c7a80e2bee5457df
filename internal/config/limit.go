package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultCharLimit is the character limit used when none is configured.
const DefaultCharLimit = 1000

// ErrInvalidLimit is returned for limits that are not positive integers.
var ErrInvalidLimit = errors.New("character limit must be a positive integer")

// ParseCharLimit parses user input for the character limit.
func ParseCharLimit(input string) (int, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidLimit)
	}
	limit, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, value)
	}
	if err := ValidateCharLimit(limit); err != nil {
		return 0, err
	}
	return limit, nil
}

// ValidateCharLimit rejects zero and negative limits.
func ValidateCharLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	return nil
}
