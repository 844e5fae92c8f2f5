// File: handlers/planner.go
package handlers

import (
	"errors"
	"net/http"

	"staffplan/models"
	"staffplan/services/planner"
	"staffplan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlannerHandler exposes the staffing planner over HTTP.
type PlannerHandler struct {
	Service planner.PlannerService
}

// NewPlannerHandler creates a PlannerHandler with the given service.
func NewPlannerHandler(svc planner.PlannerService) *PlannerHandler {
	return &PlannerHandler{Service: svc}
}

// respondPlanError maps engine errors to HTTP statuses. Validation problems
// are the caller's fault; everything else is an upstream read failure.
func respondPlanError(c *gin.Context, err error) {
	var verr *planner.ValidationError
	if errors.As(err, &verr) {
		utils.JSONError(c, http.StatusBadRequest, "invalid plan parameters", verr.Error())
		return
	}
	utils.GetLogger().Error("plan computation failed", zap.Error(err))
	utils.JSONError(c, http.StatusBadGateway, "plan computation failed", err.Error())
}

// MonthPlanHandler handles GET /api/plan/month.
func (h *PlannerHandler) MonthPlanHandler(c *gin.Context) {
	var params models.PlanParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	report, err := h.Service.MonthPlan(c.Request.Context(), params)
	if err != nil {
		respondPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// YearPlanHandler handles GET /api/plan/year.
func (h *PlannerHandler) YearPlanHandler(c *gin.Context) {
	var params models.PlanParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	report, err := h.Service.YearPlan(c.Request.Context(), params)
	if err != nil {
		respondPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ScenarioHandler handles POST /api/plan/scenario.
func (h *PlannerHandler) ScenarioHandler(c *gin.Context) {
	var params models.PlanParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	report, err := h.Service.CompareScenario(c.Request.Context(), params)
	if err != nil {
		respondPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
