package api

import (
	"net/http"

	"github.com/Gokul-G-G/Travel-Planner/internal/service"

	"github.com/gin-gonic/gin"
)

// NewRouter builds a gin engine with logging, recovery and request ids, and
// registers every route on it.
func NewRouter(planService service.PlanService) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware(), gin.Logger(), gin.Recovery())
	SetupRoutes(router, planService)
	return router
}

func SetupRoutes(router *gin.Engine, planService service.PlanService) {
	planHandler := NewPlanHandler(planService)

	router.GET("/", planHandler.Welcome)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- Plan Routes ---
	planGroup := router.Group("/plans")
	{
		planGroup.GET("", planHandler.ListPlans)
		planGroup.POST("", planHandler.CreatePlan)
		planGroup.GET("/:id", planHandler.GetPlanByID)
		planGroup.PATCH("/:id", planHandler.UpdatePlan)
		planGroup.DELETE("/:id", planHandler.DeletePlan)
	}
}
