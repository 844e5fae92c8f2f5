package routes

import (
	"time"

	"staffplan/handlers"
	"staffplan/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterPlanRoutes registers the staffing planner endpoints.
func RegisterPlanRoutes(r *gin.Engine, h *handlers.PlannerHandler) {
	api := r.Group("/api/plan")
	{
		api.GET("/month", h.MonthPlanHandler)
		api.GET("/year", h.YearPlanHandler)
		api.POST("/scenario", h.ScenarioHandler)
	}
}

// RegisterHealthRoute registers the service health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterMetricsRoute exposes the prometheus registry.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
}

// RegisterRoutes sets global middleware and mounts all route groups.
func RegisterRoutes(r *gin.Engine, planHandler *handlers.PlannerHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPlanRoutes(r, planHandler)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
