package utils

import (
	"fmt"
	"strconv"
)

// ParseID parses a positive int64 identifier from a path or query value.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	if id < 1 {
		return 0, fmt.Errorf("invalid id %q: must be positive", value)
	}
	return id, nil
}

// ParseOptionalInt returns nil for an empty value.
func ParseOptionalInt(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", value)
	}

	return &result, nil
}
