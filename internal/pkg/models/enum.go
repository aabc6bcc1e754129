package models

import (
	"errors"
	"fmt"
)

// ErrUnknownEnumValue is returned when a persisted or received string does not
// name a member of a closed value set.
var ErrUnknownEnumValue = errors.New("unknown enum value")

func parseEnum[T ~string](kind, raw string, values []T) (T, error) {
	for _, v := range values {
		if string(v) == raw {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownEnumValue, kind, raw)
}

func scanEnum[T ~string](kind string, src interface{}, values []T) (T, error) {
	switch v := src.(type) {
	case string:
		return parseEnum(kind, v, values)
	case []byte:
		return parseEnum(kind, string(v), values)
	default:
		var zero T
		return zero, fmt.Errorf("%w: %s from %T", ErrUnknownEnumValue, kind, src)
	}
}
