package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staffplan/handlers"
	"staffplan/models"
	"staffplan/services/planner"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlanner struct {
	month    *models.MonthReport
	year     *models.YearReport
	scenario *models.ScenarioReport
	err      error

	gotParams models.PlanParams
}

func (s *stubPlanner) MonthPlan(ctx context.Context, p models.PlanParams) (*models.MonthReport, error) {
	s.gotParams = p
	return s.month, s.err
}

func (s *stubPlanner) YearPlan(ctx context.Context, p models.PlanParams) (*models.YearReport, error) {
	s.gotParams = p
	return s.year, s.err
}

func (s *stubPlanner) CompareScenario(ctx context.Context, p models.PlanParams) (*models.ScenarioReport, error) {
	s.gotParams = p
	return s.scenario, s.err
}

func setupRouter(stub *stubPlanner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewPlannerHandler(stub)
	r.GET("/api/plan/month", h.MonthPlanHandler)
	r.GET("/api/plan/year", h.YearPlanHandler)
	r.POST("/api/plan/scenario", h.ScenarioHandler)
	return r
}

func TestMonthPlanHandler(t *testing.T) {
	stub := &stubPlanner{month: &models.MonthReport{Month: 8, Year: 2026, Revenue: 42000}}
	r := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plan/month?month=8&baselineYear=2025&staffingDetail=true", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body models.MonthReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 8, body.Month)
	assert.Equal(t, 2026, body.Year)
	assert.InDelta(t, 42000, body.Revenue, 0.001)

	assert.Equal(t, 8, stub.gotParams.Month)
	assert.Equal(t, 2025, stub.gotParams.BaselineYear)
	assert.True(t, stub.gotParams.StaffingDetail)
}

func TestMonthPlanHandlerValidationError(t *testing.T) {
	stub := &stubPlanner{err: &planner.ValidationError{Field: "month", Reason: "must be 1-12, got 13"}}
	r := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plan/month?month=13", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid plan parameters")
}

func TestMonthPlanHandlerUpstreamError(t *testing.T) {
	stub := &stubPlanner{err: errors.New("mongo unreachable")}
	r := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plan/month?month=8", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestMonthPlanHandlerBadQuery(t *testing.T) {
	stub := &stubPlanner{}
	r := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plan/month?month=notanumber", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestYearPlanHandler(t *testing.T) {
	stub := &stubPlanner{year: &models.YearReport{Year: 2026, Revenue: 515000}}
	r := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/plan/year?baselineYear=2025&robust=true", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body models.YearReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2026, body.Year)
	assert.True(t, stub.gotParams.Robust)
}

func TestScenarioHandler(t *testing.T) {
	stub := &stubPlanner{scenario: &models.ScenarioReport{Year: 2026, RevenueDelta: 1200}}
	r := setupRouter(stub)

	payload := `{
		"baselineYear": 2025,
		"timeShifts": [{"month": 8, "weekdays": [6], "closeDeltaMin": 60}]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plan/scenario", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body models.ScenarioReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 1200, body.RevenueDelta, 0.001)

	require.Len(t, stub.gotParams.TimeShifts, 1)
	assert.Equal(t, 8, stub.gotParams.TimeShifts[0].Month)
	assert.Equal(t, []int{6}, stub.gotParams.TimeShifts[0].Weekdays)
	assert.Equal(t, 60, stub.gotParams.TimeShifts[0].CloseDeltaMin)
}

func TestScenarioHandlerBadJSON(t *testing.T) {
	stub := &stubPlanner{}
	r := setupRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plan/scenario", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
