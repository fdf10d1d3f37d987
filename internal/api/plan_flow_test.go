package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Gokul-G-G/Travel-Planner/internal/api"
	"github.com/Gokul-G-G/Travel-Planner/internal/domain"
	"github.com/Gokul-G-G/Travel-Planner/internal/repository"
	"github.com/Gokul-G-G/Travel-Planner/internal/service"
)

// memoryPlanRepo keeps plans in insertion order and applies the same
// overwrite semantics as the Mongo repository.
type memoryPlanRepo struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	plans map[primitive.ObjectID]domain.Plan
}

func newMemoryPlanRepo() *memoryPlanRepo {
	return &memoryPlanRepo{plans: map[primitive.ObjectID]domain.Plan{}}
}

func (r *memoryPlanRepo) Create(_ context.Context, f domain.PlanFields) (*domain.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := domain.Plan{ID: primitive.NewObjectID(), Destination: f.Destination, StartDate: f.StartDate, EndDate: f.EndDate, Activities: f.Activities}
	r.plans[p.ID] = p
	r.order = append(r.order, p.ID)
	return &p, nil
}

func (r *memoryPlanRepo) GetAll(context.Context) ([]domain.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Plan{}
	for _, id := range r.order {
		if p, ok := r.plans[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memoryPlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *memoryPlanRepo) UpdateByID(_ context.Context, id primitive.ObjectID, f domain.PlanFields) (*domain.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Destination, p.StartDate, p.EndDate, p.Activities = f.Destination, f.StartDate, f.EndDate, f.Activities
	r.plans[id] = p
	return &p, nil
}

func (r *memoryPlanRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (*domain.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.plans, id)
	return &p, nil
}

func newFlowRouter() (http.Handler, *memoryPlanRepo) {
	repo := newMemoryPlanRepo()
	return api.NewRouter(service.NewPlanService(repo)), repo
}

func TestPlanLifecycle(t *testing.T) {
	router, _ := newFlowRouter()

	rec := do(t, router, http.MethodPost, "/plans", map[string]interface{}{
		"destination": "Paris",
		"startDate":   "2024-06-01",
		"endDate":     "2024-06-10",
		"activities":  []string{"museum"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created api.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Paris", *created.Destination)
	assert.Equal(t, "2024-06-01T00:00:00.000Z", *created.StartDate)
	assert.Equal(t, "2024-06-10T00:00:00.000Z", *created.EndDate)
	require.NotEmpty(t, created.ID)

	rec = do(t, router, http.MethodGet, "/plans/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched api.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	rec = do(t, router, http.MethodPatch, "/plans/"+created.ID, map[string]interface{}{
		"activities": []string{"museum", "cafe"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated api.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, []interface{}{"museum", "cafe"}, updated.Activities)
	assert.Equal(t, created.ID, updated.ID)
	// Omitted fields are overwritten, not merged.
	assert.Nil(t, updated.Destination)

	rec = do(t, router, http.MethodDelete, "/plans/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/plans/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodDelete, "/plans/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListContainsAllCreated(t *testing.T) {
	router, _ := newFlowRouter()
	ids := map[string]string{}
	for _, dest := range []string{"Paris", "Kyoto"} {
		rec := do(t, router, http.MethodPost, "/plans", map[string]interface{}{
			"destination": dest,
			"startDate":   "2024-06-01",
			"endDate":     "2024-06-10",
			"activities":  []string{},
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var p api.PlanResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.NotContains(t, ids, p.ID, "ids must be unique")
		ids[p.ID] = dest
	}

	rec := do(t, router, http.MethodGet, "/plans", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var plans []api.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plans))
	require.Len(t, plans, 2)
	for _, p := range plans {
		assert.Equal(t, ids[p.ID], *p.Destination)
		assert.Empty(t, p.Activities)
	}
}

func TestCreateMissingFieldPersistsNothing(t *testing.T) {
	required := []string{"destination", "startDate", "endDate", "activities"}
	for _, omit := range required {
		t.Run(omit, func(t *testing.T) {
			router, repo := newFlowRouter()
			body := map[string]interface{}{
				"destination": "Paris",
				"startDate":   "2024-06-01",
				"endDate":     "2024-06-10",
				"activities":  []string{"museum"},
			}
			delete(body, omit)

			rec := do(t, router, http.MethodPost, "/plans", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"message":"Missing required fields"}`, rec.Body.String())
			assert.Empty(t, repo.plans)
		})
	}
}

func TestCreateOutOfRangeDateRejected(t *testing.T) {
	for _, millis := range []float64{1e300, 9e15, -1e20} {
		router, repo := newFlowRouter()

		rec := do(t, router, http.MethodPost, "/plans", map[string]interface{}{
			"destination": "Paris",
			"startDate":   millis,
			"endDate":     "2024-06-10",
			"activities":  []string{"museum"},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code, "%g", millis)
		body := decodeMap(t, rec)
		assert.Equal(t, "Error creating plan", body["message"])
		assert.Contains(t, body["error"], "Cast to date failed")
		assert.Empty(t, repo.plans)
	}
}

func TestMalformedAndUnknownIDs(t *testing.T) {
	router, _ := newFlowRouter()

	rec := do(t, router, http.MethodGet, "/plans/not-an-object-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/plans/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPatch, "/plans/"+primitive.NewObjectID().Hex(), map[string]interface{}{"destination": "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnavailableDatabaseReports400(t *testing.T) {
	repo := repository.NewUnavailablePlanRepository(assert.AnError)
	router := api.NewRouter(service.NewPlanService(repo))

	rec := do(t, router, http.MethodGet, "/plans", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "Error fetching plans", body["message"])
	assert.Contains(t, body["error"], "database unavailable")
}
