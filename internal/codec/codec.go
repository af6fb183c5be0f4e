// Package codec converts nested sub-records (statistics, events, gallery,
// variants, variant options, related article ids) to and from the JSON text
// they travel and persist as.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SchemaVersion is stored next to every persisted document so readers can
// tell which shape the nested text has.
const SchemaVersion = 1

var ErrMalformed = errors.New("malformed transport encoding")

// Encode returns the JSON text of v, or "null" when v cannot be encoded.
func Encode(v any) string {
	if v == nil {
		return "null"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}

// Decode parses raw into a T. Empty or "null" input yields fallback and no
// error; malformed input yields fallback and an error wrapping ErrMalformed.
func Decode[T any](raw string, fallback T) (T, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return fallback, nil
	}
	var out T
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return fallback, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}
