package repository

import (
	"context"
	"fmt"

	"github.com/Gokul-G-G/Travel-Planner/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// unavailablePlanRepository stands in for the Mongo repository when the
// initial connection could not be made. Every call fails with the cause.
type unavailablePlanRepository struct {
	err error
}

// NewUnavailablePlanRepository returns a PlanRepository whose operations all
// fail with ErrUnavailable wrapping cause.
func NewUnavailablePlanRepository(cause error) PlanRepository {
	return &unavailablePlanRepository{err: fmt.Errorf("%w: %v", ErrUnavailable, cause)}
}

func (r *unavailablePlanRepository) Create(ctx context.Context, fields domain.PlanFields) (*domain.Plan, error) {
	return nil, r.err
}

func (r *unavailablePlanRepository) GetAll(ctx context.Context) ([]domain.Plan, error) {
	return nil, r.err
}

func (r *unavailablePlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Plan, error) {
	return nil, r.err
}

func (r *unavailablePlanRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields domain.PlanFields) (*domain.Plan, error) {
	return nil, r.err
}

func (r *unavailablePlanRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*domain.Plan, error) {
	return nil, r.err
}
