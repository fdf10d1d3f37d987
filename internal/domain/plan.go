// internal/domain/plan.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan represents a travel itinerary stored in the "plans" collection.
// Scalar fields are pointers because an update can unset them.
type Plan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Destination *string            `bson:"destination,omitempty" json:"destination,omitempty"`
	StartDate   *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Activities  []interface{}      `bson:"activities" json:"activities"` // Opaque values, no sub-schema
	Version     int                `bson:"__v" json:"__v"`               // Document version key, 0 on insert
}

// PlanFields is the set of mutable fields written by create and update.
// A nil field is absent: create rejects it, update unsets it.
type PlanFields struct {
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	Activities  []interface{} // nil means absent, an empty non-nil slice is a value
}
