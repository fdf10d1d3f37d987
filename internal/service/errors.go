package service

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrMissingFields    = errors.New("missing required fields")
	ErrValidationFailed = errors.New("plans validation failed")
)

// CastError reports a value that could not be converted to the type stored at Path.
type CastError struct {
	Kind  string      // "date" or "ObjectId"
	Value interface{} // the raw value as received
	Path  string      // field name, "_id" for identifiers
}

func (e *CastError) Error() string {
	return fmt.Sprintf("Cast to %s failed for value %s (type %s) at path %q", e.Kind, describeValue(e.Value), jsonTypeName(e.Value), e.Path)
}

func describeValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// jsonTypeName names the JSON type of a decoded value.
func jsonTypeName(v interface{}) string {
	switch v.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []interface{}:
		return "array"
	case nil:
		return "null"
	default:
		return "object"
	}
}
