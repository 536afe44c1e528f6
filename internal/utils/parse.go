package utils

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs parses a string into the specified type T.
// For string targets the content is returned as-is. For complex types
// (structs, maps, slices) it attempts JSON unmarshaling; if that fails, the
// content is run through jsonrepair and unmarshaling is retried. This makes
// the helper tolerant of the slightly malformed JSON that language models
// tend to produce (single quotes, unquoted keys, trailing commas).
//
// Example usage:
//
//	type Place struct {
//	    City string `json:"city"`
//	}
//
//	// Parse a valid JSON string
//	place, err := ParseStringAs[Place](`{"city":"Harbin"}`)
//
//	// Parse an invalid JSON string (will be auto-repaired)
//	place, err := ParseStringAs[Place](`{city: 'Harbin'}`)
func ParseStringAs[T any](content string) (T, error) {
	var result T

	if reflect.TypeFor[T]().Kind() == reflect.String {
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil
	}

	err := json.Unmarshal([]byte(content), &result)
	if err == nil {
		return result, nil
	}

	repairedJSON, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	if err = json.Unmarshal([]byte(repairedJSON), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repairedJSON)
	}
	return result, nil
}
