package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	profileRepo "staffplan/database/repository/profile"
	"staffplan/metrics"
	"staffplan/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// monthWorkers bounds the fan-out of year and scenario runs.
const monthWorkers = 4

// DefaultPlannerService is the production implementation of PlannerService.
type DefaultPlannerService struct {
	Repo   profileRepo.ProfileRepository
	Cfg    EngineConfig
	Logger *zap.Logger
}

// NewDefaultPlannerService wires the service with the engine config from the
// application config.
func NewDefaultPlannerService(repo profileRepo.ProfileRepository, logger *zap.Logger) *DefaultPlannerService {
	return &DefaultPlannerService{Repo: repo, Cfg: EngineConfigFromApp(), Logger: logger}
}

// project reads the prior-year revenue and the historical day averages and
// derives the scale factor for the target year.
func (s *DefaultPlannerService) project(ctx context.Context, p models.PlanParams) (Projection, error) {
	prior, err := s.Repo.YearRevenue(ctx, p.BaselineYear)
	if err != nil {
		return Projection{}, fmt.Errorf("reading baseline year revenue: %w", err)
	}
	dayAverages, err := s.Repo.YearDayAverages(ctx, p.Robust)
	if err != nil {
		return Projection{}, fmt.Errorf("reading historical day averages: %w", err)
	}
	return ProjectRevenue(prior, p.GrowthFactor, dayAverages, p.BaselineYear+1), nil
}

// planDay runs the full pipeline for one (month, weekday).
func (s *DefaultPlannerService) planDay(month, weekday int, p models.PlanParams, factor float64, slices []models.ProfileSlice) (models.DayPlan, error) {
	day := models.DayPlan{
		Weekday:     weekday,
		WeekdayName: WeekdayName(weekday),
		Slots:       []models.Slot{},
	}

	hours := OpeningHoursFor(month, weekday)
	if hours.Closed {
		day.Closed = true
		return day, nil
	}

	slots, err := BuildDaySlots(month, weekday, p, buildDayProfile(slices, weekday))
	if err != nil {
		return day, err
	}
	slots = EstimateDemand(slots, p, s.Cfg, factor)

	openDelta, closeDelta := p.ShiftFor(month, weekday)
	day.OpenTime = minutesToClock(hours.OpenHour*60 + openDelta)
	day.CloseTime = minutesToClock(hours.CloseHour*60 + closeDelta)
	day.Slots = slots
	day.Revenue, day.Cost = dayTotals(slots)

	shifts := PackShifts(DemandCurve(slots, s.Cfg), p.FrontUnitCost, s.Cfg)
	shifts = append(shifts, FixedCrewShifts(slots)...)
	shifts = append(shifts, StandbyShifts(s.Cfg)...)
	day.Shifts = shifts

	// Without the staffing toggle the response carries times and revenue only.
	// Day totals above already include the full plan.
	if !p.StaffingDetail {
		for i := range day.Slots {
			day.Slots[i].StaffNorm = 0
			day.Slots[i].StaffCapacity = 0
			day.Slots[i].BudgetCap = 0
			day.Slots[i].StaffPlanned = 0
			day.Slots[i].OverBudget = false
			day.Slots[i].BudgetGapAmount = 0
			day.Slots[i].UnitCostFront = 0
			day.Slots[i].UnitCostKitchen = 0
			day.Slots[i].KitchenStaff = 0
		}
		day.Shifts = nil
	}

	return day, nil
}

// monthPlan computes one month against an already derived projection.
func (s *DefaultPlannerService) monthPlan(ctx context.Context, month int, p models.PlanParams, proj Projection) (models.MonthReport, error) {
	slices, err := s.Repo.MonthProfile(ctx, month, p.Robust)
	if err != nil {
		return models.MonthReport{}, fmt.Errorf("reading month %d profile: %w", month, err)
	}

	// The seven weekdays are independent; compute them concurrently and sum
	// afterwards in weekday order so rounding stays reproducible.
	days := make([]models.DayPlan, 7)
	errs := make([]error, 7)
	var wg sync.WaitGroup
	for weekday := 1; weekday <= 7; weekday++ {
		wg.Add(1)
		go func(weekday int) {
			defer wg.Done()
			days[weekday-1], errs[weekday-1] = s.planDay(month, weekday, p, proj.Factor, slices)
		}(weekday)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return models.MonthReport{}, err
		}
	}

	return BuildMonthReport(p.BaselineYear+1, month, days), nil
}

func (s *DefaultPlannerService) prepare(p *models.PlanParams) error {
	p.ApplyDefaults()
	return ValidateParams(*p)
}

// meta builds the report meta block. The run ID is a name-based UUID over the
// request parameters, so identical requests carry identical IDs and repeated
// runs stay byte-for-byte reproducible.
func (s *DefaultPlannerService) meta(p models.PlanParams, proj Projection) *models.PlanMeta {
	params, _ := json.Marshal(p)
	return &models.PlanMeta{
		RunID:            uuid.NewSHA1(uuid.NameSpaceOID, params).String(),
		ScaleFactor:      proj.Factor,
		PriorYearRevenue: proj.PriorYearRevenue,
		TargetRevenue:    proj.TargetRevenue,
		FrontUnitCost:    p.FrontUnitCost,
		KitchenUnitCost:  p.KitchenUnitCost,
	}
}

func (s *DefaultPlannerService) MonthPlan(ctx context.Context, p models.PlanParams) (*models.MonthReport, error) {
	start := time.Now()
	metrics.PlanRequestsTotal.WithLabelValues("month").Inc()

	if err := s.prepare(&p); err != nil {
		metrics.PlanErrorsTotal.WithLabelValues("month").Inc()
		return nil, err
	}

	proj, err := s.project(ctx, p)
	if err != nil {
		metrics.PlanErrorsTotal.WithLabelValues("month").Inc()
		return nil, err
	}

	report, err := s.monthPlan(ctx, p.Month, p, proj)
	if err != nil {
		metrics.PlanErrorsTotal.WithLabelValues("month").Inc()
		return nil, err
	}
	if p.WithMeta {
		report.Meta = s.meta(p, proj)
	}

	overBudget, shiftCount := 0, 0
	for _, day := range report.Days {
		for _, slot := range day.Slots {
			if slot.OverBudget {
				overBudget++
			}
		}
		shiftCount += len(day.Shifts)
	}
	metrics.OverBudgetSlots.Set(float64(overBudget))
	metrics.ShiftsEmitted.Set(float64(shiftCount))
	metrics.PlanDurationSeconds.WithLabelValues("month").Observe(time.Since(start).Seconds())

	s.Logger.Info("month plan computed",
		zap.Int("month", p.Month),
		zap.Float64("scaleFactor", proj.Factor),
		zap.Float64("revenue", report.Revenue),
		zap.Float64("cost", report.Cost),
		zap.Duration("took", time.Since(start)),
	)
	return &report, nil
}

// yearPlan runs all twelve months over a bounded worker pool and accumulates
// them in calendar order.
func (s *DefaultPlannerService) yearPlan(ctx context.Context, p models.PlanParams, proj Projection) (models.YearReport, error) {
	monthReports := make([]models.MonthReport, 12)
	errs := make([]error, 12)
	sem := make(chan struct{}, monthWorkers)
	var wg sync.WaitGroup
	for month := 1; month <= 12; month++ {
		wg.Add(1)
		go func(month int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			monthReports[month-1], errs[month-1] = s.monthPlan(ctx, month, p, proj)
		}(month)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return models.YearReport{}, err
		}
	}
	return BuildYearReport(p.BaselineYear+1, monthReports), nil
}

func (s *DefaultPlannerService) YearPlan(ctx context.Context, p models.PlanParams) (*models.YearReport, error) {
	start := time.Now()
	metrics.PlanRequestsTotal.WithLabelValues("year").Inc()

	// The month parameter is unused in a year run.
	if p.Month == 0 {
		p.Month = 1
	}
	if err := s.prepare(&p); err != nil {
		metrics.PlanErrorsTotal.WithLabelValues("year").Inc()
		return nil, err
	}
	proj, err := s.project(ctx, p)
	if err != nil {
		metrics.PlanErrorsTotal.WithLabelValues("year").Inc()
		return nil, err
	}

	report, err := s.yearPlan(ctx, p, proj)
	if err != nil {
		metrics.PlanErrorsTotal.WithLabelValues("year").Inc()
		return nil, err
	}
	if p.WithMeta {
		report.Meta = s.meta(p, proj)
	}
	metrics.PlanDurationSeconds.WithLabelValues("year").Observe(time.Since(start).Seconds())

	s.Logger.Info("year plan computed",
		zap.Int("year", report.Year),
		zap.Float64("revenue", report.Revenue),
		zap.Float64("cost", report.Cost),
		zap.Duration("took", time.Since(start)),
	)
	return &report, nil
}

func (s *DefaultPlannerService) CompareScenario(ctx context.Context, p models.PlanParams) (*models.ScenarioReport, error) {
	start := time.Now()
	metrics.PlanRequestsTotal.WithLabelValues("scenario").Inc()

	if p.Month == 0 {
		p.Month = 1
	}
	if err := s.prepare(&p); err != nil {
		metrics.PlanErrorsTotal.WithLabelValues("scenario").Inc()
		return nil, err
	}
	proj, err := s.project(ctx, p)
	if err != nil {
		metrics.PlanErrorsTotal.WithLabelValues("scenario").Inc()
		return nil, err
	}

	baseParams := p
	baseParams.TimeShifts = nil
	baseline, err := s.yearPlan(ctx, baseParams, proj)
	if err != nil {
		metrics.PlanErrorsTotal.WithLabelValues("scenario").Inc()
		return nil, err
	}
	scenario, err := s.yearPlan(ctx, p, proj)
	if err != nil {
		metrics.PlanErrorsTotal.WithLabelValues("scenario").Inc()
		return nil, err
	}

	report := BuildScenarioReport(baseline, scenario)
	if p.WithMeta {
		report.Meta = s.meta(p, proj)
	}
	metrics.PlanDurationSeconds.WithLabelValues("scenario").Observe(time.Since(start).Seconds())

	s.Logger.Info("scenario comparison computed",
		zap.Int("year", report.Year),
		zap.Float64("revenueDelta", report.RevenueDelta),
		zap.Float64("costDelta", report.CostDelta),
		zap.Duration("took", time.Since(start)),
	)
	return &report, nil
}
