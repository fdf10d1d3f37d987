package service

import (
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dateLayouts are tried in order when casting a string to a date.
// Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// maxDateMillis bounds epoch milliseconds to +/-100,000,000 days around 1970.
const maxDateMillis = 8.64e15

// castDate converts a decoded JSON value into a date.
// nil and the empty string cast to "no value".
func castDate(path string, v interface{}) (*time.Time, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		if val == "" {
			return nil, nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, val, time.UTC); err == nil {
				t = t.UTC()
				return &t, nil
			}
		}
	case float64:
		// NaN and the infinities fail the range check.
		if math.Abs(val) <= maxDateMillis {
			// Fractional milliseconds are dropped.
			t := time.UnixMilli(int64(math.Trunc(val))).UTC()
			return &t, nil
		}
	}
	return nil, &CastError{Kind: "date", Value: v, Path: path}
}

// parsePlanID converts a hex string into an ObjectID.
func parsePlanID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &CastError{Kind: "ObjectId", Value: id, Path: "_id"}
	}
	return oid, nil
}

// isTruthy reports whether a decoded JSON value would pass a presence check:
// null, false, 0 and "" are all treated as missing.
func isTruthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case float64:
		return val != 0 && !math.IsNaN(val)
	case bool:
		return val
	default:
		return true
	}
}

func validationError(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrValidationFailed, path, err)
}
