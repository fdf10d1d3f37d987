package repository

import (
	"context"

	"github.com/Gokul-G-G/Travel-Planner/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound    = RepositoryError("not found")
	ErrUnavailable = RepositoryError("database unavailable")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// PlanRepository defines the interface for interacting with plan data.
// Every lookup is addressed by the generated ObjectID; callers parse hex ids first.
type PlanRepository interface {
	Create(ctx context.Context, fields domain.PlanFields) (*domain.Plan, error)
	GetAll(ctx context.Context) ([]domain.Plan, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Plan, error)
	// UpdateByID replaces the named fields and unsets the absent ones, returning the post-update record.
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields domain.PlanFields) (*domain.Plan, error)
	// DeleteByID removes the record and returns it as it was before removal.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*domain.Plan, error)
}
