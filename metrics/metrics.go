// Package metrics provides Prometheus observability metrics for the staffing
// planner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// PlanRequestsTotal counts planning runs by kind (month, year, scenario).
var PlanRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "planner",
	Name:      "plan_requests_total",
	Help:      "Number of planning runs, by kind",
}, []string{"kind"})

// PlanErrorsTotal counts failed planning runs by kind.
var PlanErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "planner",
	Name:      "plan_errors_total",
	Help:      "Number of failed planning runs, by kind",
}, []string{"kind"})

// PlanDurationSeconds observes how long a planning run takes.
var PlanDurationSeconds = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "planner",
	Name:      "plan_duration_seconds",
	Help:      "Duration of planning runs, by kind",
	Buckets:   prometheus.DefBuckets,
}, []string{"kind"})

// OverBudgetSlots tracks how many slots of the last month run exceeded their
// labor budget cap. High values indicate the cost ceiling is unrealistic.
var OverBudgetSlots = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "planner",
	Name:      "over_budget_slots",
	Help:      "Slots exceeding their budget cap in the most recent month run",
})

// ShiftsEmitted tracks the number of shifts produced by the last month run.
var ShiftsEmitted = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "planner",
	Name:      "shifts_emitted",
	Help:      "Shifts produced by the most recent month run",
})
