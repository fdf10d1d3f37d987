package service

import (
	"context"
	"errors"

	"github.com/Gokul-G-G/Travel-Planner/internal/domain"
	"github.com/Gokul-G-G/Travel-Planner/internal/repository"
)

// PlanInput carries the four writable plan fields as decoded from JSON.
// Dates stay untyped (string, number or nil) until the service casts them.
type PlanInput struct {
	Destination *string
	StartDate   interface{}
	EndDate     interface{}
	Activities  []interface{} // nil when absent or null
}

// --- Service Interface ---
type PlanService interface {
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	GetPlan(ctx context.Context, id string) (*domain.Plan, error)
	CreatePlan(ctx context.Context, input PlanInput) (*domain.Plan, error)
	UpdatePlan(ctx context.Context, id string, input PlanInput) (*domain.Plan, error)
	DeletePlan(ctx context.Context, id string) error
}

// --- Service Implementation ---

// planService implements the PlanService interface.
type planService struct {
	planRepo repository.PlanRepository
}

// NewPlanService creates a new instance of planService.
func NewPlanService(planRepo repository.PlanRepository) PlanService {
	return &planService{
		planRepo: planRepo,
	}
}

// ListPlans returns every stored plan. Repository errors are propagated as-is.
func (s *planService) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	return s.planRepo.GetAll(ctx)
}

// GetPlan retrieves a single plan. A malformed id yields a *CastError, a
// well-formed id with no match yields ErrPlanNotFound.
func (s *planService) GetPlan(ctx context.Context, id string) (*domain.Plan, error) {
	planID, err := parsePlanID(id)
	if err != nil {
		return nil, err
	}
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// CreatePlan checks that all four fields are present, casts the dates and
// persists the plan.
func (s *planService) CreatePlan(ctx context.Context, input PlanInput) (*domain.Plan, error) {
	if input.Destination == nil || *input.Destination == "" ||
		!isTruthy(input.StartDate) || !isTruthy(input.EndDate) ||
		input.Activities == nil {
		return nil, ErrMissingFields
	}

	startDate, err := castDate("startDate", input.StartDate)
	if err != nil {
		return nil, validationError("startDate", err)
	}
	endDate, err := castDate("endDate", input.EndDate)
	if err != nil {
		return nil, validationError("endDate", err)
	}

	return s.planRepo.Create(ctx, domain.PlanFields{
		Destination: input.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Activities:  input.Activities,
	})
}

// UpdatePlan overwrites all four fields with whatever was supplied.
// Omitted fields are cleared on the stored plan; there is no merge.
func (s *planService) UpdatePlan(ctx context.Context, id string, input PlanInput) (*domain.Plan, error) {
	planID, err := parsePlanID(id)
	if err != nil {
		return nil, err
	}

	startDate, err := castDate("startDate", input.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := castDate("endDate", input.EndDate)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.UpdateByID(ctx, planID, domain.PlanFields{
		Destination: input.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Activities:  input.Activities,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// DeletePlan removes a plan. ErrPlanNotFound when nothing matched.
func (s *planService) DeletePlan(ctx context.Context, id string) error {
	planID, err := parsePlanID(id)
	if err != nil {
		return err
	}
	if _, err := s.planRepo.DeleteByID(ctx, planID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}
