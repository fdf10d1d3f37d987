// internal/api/plan_handler.go
package api

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Gokul-G-G/Travel-Planner/internal/domain"
	"github.com/Gokul-G-G/Travel-Planner/internal/service"

	"github.com/gin-gonic/gin"
)

// isoLayout matches the ISO-8601 form clients of this API expect: millisecond precision, UTC.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Response messages
const (
	msgPlanNotFound  = "Plan not found"
	msgMissingFields = "Missing required fields"
	msgPlanDeleted   = "Plan deleted successfully"
	msgFetchPlansErr = "Error fetching plans"
	msgFetchPlanErr  = "Error fetching plan"
	msgCreatePlanErr = "Error creating plan"
	msgUpdatePlanErr = "Error updating plan"
	msgDeletePlanErr = "Error deleting plan"
	welcomeMessage   = "Welcome to Travel Planner API"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs for API (Data Transfer Objects) ---

// PlanRequest is the JSON body accepted by create and update.
// Unknown fields are ignored. Dates may be strings or epoch milliseconds.
type PlanRequest struct {
	Destination *string       `json:"destination"`
	StartDate   interface{}   `json:"startDate"`
	EndDate     interface{}   `json:"endDate"`
	Activities  []interface{} `json:"activities"`
}

func (r PlanRequest) toInput() service.PlanInput {
	return service.PlanInput{
		Destination: r.Destination,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Activities:  r.Activities,
	}
}

// PlanResponse is the DTO for returning plan details.
type PlanResponse struct {
	ID          string        `json:"_id"`
	Destination *string       `json:"destination,omitempty"`
	StartDate   *string       `json:"startDate,omitempty"`
	EndDate     *string       `json:"endDate,omitempty"`
	Activities  []interface{} `json:"activities"`
	Version     int           `json:"__v"`
}

// MessageResponse is the body of not-found, validation and delete responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a route-level message plus the underlying error text.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(isoLayout)
	return &s
}

// MapPlanToResponse converts a domain.Plan to PlanResponse DTO.
// A plan stored without activities reports an empty array.
func MapPlanToResponse(p *domain.Plan) PlanResponse {
	if p == nil {
		return PlanResponse{Activities: []interface{}{}}
	}
	activities := p.Activities
	if activities == nil {
		activities = []interface{}{}
	}
	return PlanResponse{
		ID:          p.ID.Hex(),
		Destination: p.Destination,
		StartDate:   formatDate(p.StartDate),
		EndDate:     formatDate(p.EndDate),
		Activities:  activities,
		Version:     p.Version,
	}
}

// MapPlansToResponse converts a slice of domain.Plan to a slice of PlanResponse DTO.
func MapPlansToResponse(plans []domain.Plan) []PlanResponse {
	responses := make([]PlanResponse, len(plans))
	for i := range plans {
		responses[i] = MapPlanToResponse(&plans[i])
	}
	return responses
}

// bindPlanRequest decodes the body. An empty body is an empty object.
func bindPlanRequest(c *gin.Context) (PlanRequest, error) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return PlanRequest{}, err
	}
	return req, nil
}

func respondError(c *gin.Context, message string, err error) {
	log.Printf("ERROR: %s %s [%s]: %s: %v", c.Request.Method, c.Request.URL.Path, c.GetString(ContextRequestIDKey), message, err)
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message, Error: err.Error()})
}

func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, MessageResponse{Message: msgPlanNotFound})
}

// --- Handler Methods ---

// Welcome godoc
// @Summary API welcome message
// @Produce plain
// @Success 200 {string} string "Welcome to Travel Planner API"
// @Router / [get]
func (h *PlanHandler) Welcome(c *gin.Context) {
	log.Println("From the Server")
	c.String(http.StatusOK, welcomeMessage)
}

// ListPlans godoc
// @Summary List all plans
// @Description Returns every stored plan, unfiltered and unpaginated.
// @Tags Plans
// @Produce json
// @Success 200 {array} PlanResponse "List of plans"
// @Failure 400 {object} ErrorResponse "Persistence failure"
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.planService.ListPlans(c.Request.Context())
	if err != nil {
		respondError(c, msgFetchPlansErr, err)
		return
	}

	c.JSON(http.StatusOK, MapPlansToResponse(plans)) // Empty array, never null
}

// GetPlanByID godoc
// @Summary Get a plan by ID
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ObjectID (hex)"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} ErrorResponse "Malformed id or persistence failure"
// @Failure 404 {object} MessageResponse "Plan not found"
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlanByID(c *gin.Context) {
	plan, err := h.planService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			respondNotFound(c)
		} else {
			respondError(c, msgFetchPlanErr, err)
		}
		return
	}

	c.JSON(http.StatusOK, MapPlanToResponse(plan))
}

// CreatePlan godoc
// @Summary Create a plan
// @Description destination, startDate, endDate and activities are all required.
// @Tags Plans
// @Accept json
// @Produce json
// @Param plan body PlanRequest true "Plan details"
// @Success 201 {object} PlanResponse "Plan created successfully"
// @Failure 400 {object} MessageResponse "Missing required fields"
// @Failure 400 {object} ErrorResponse "Cast or persistence failure"
// @Router /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	req, err := bindPlanRequest(c)
	if err != nil {
		respondError(c, msgCreatePlanErr, err)
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, MessageResponse{Message: msgMissingFields})
		} else {
			respondError(c, msgCreatePlanErr, err)
		}
		return
	}

	c.JSON(http.StatusCreated, MapPlanToResponse(plan))
}

// UpdatePlan godoc
// @Summary Update a plan
// @Description Overwrites destination, startDate, endDate and activities with the supplied values; omitted fields are cleared.
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ObjectID (hex)"
// @Param plan body PlanRequest true "Any subset of the plan fields"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} ErrorResponse "Malformed id, cast or persistence failure"
// @Failure 404 {object} MessageResponse "Plan not found"
// @Router /plans/{id} [patch]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	req, err := bindPlanRequest(c)
	if err != nil {
		respondError(c, msgUpdatePlanErr, err)
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			respondNotFound(c)
		} else {
			respondError(c, msgUpdatePlanErr, err)
		}
		return
	}

	c.JSON(http.StatusOK, MapPlanToResponse(plan))
}

// DeletePlan godoc
// @Summary Delete a plan
// @Tags Plans
// @Produce json
// @Param id path string true "Plan ObjectID (hex)"
// @Success 200 {object} MessageResponse "Plan deleted successfully"
// @Failure 400 {object} ErrorResponse "Malformed id or persistence failure"
// @Failure 404 {object} MessageResponse "Plan not found"
// @Router /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.planService.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			respondNotFound(c)
		} else {
			respondError(c, msgDeletePlanErr, err)
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: msgPlanDeleted})
}
