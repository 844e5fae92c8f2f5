package planner

import (
	"strings"

	"staffplan/config"
)

// EngineConfig carries the business constants of the planning engine. The
// values come from application config so scenario work can tune them without
// touching code.
type EngineConfig struct {
	LaborCostCeiling float64 // max labor cost as a fraction of slot revenue
	HandoffMin       int     // minutes from midnight splitting the packing day in two
	MinShiftQuarters int
	MaxShiftQuarters int // 0 = unlimited
	StandbyWindows   []StandbyWindow
}

// StandbyWindow is a fixed single-person on-call coverage block.
type StandbyWindow struct {
	Start int // minutes from midnight
	End   int
}

// EngineConfigFromApp builds the engine config from the loaded application
// config, falling back to the documented defaults on parse errors.
func EngineConfigFromApp() EngineConfig {
	cfg := EngineConfig{
		LaborCostCeiling: config.AppConfig.LaborCostCeiling,
		HandoffMin:       17*60 + 30,
		MinShiftQuarters: config.AppConfig.MinShiftQuarters,
		MaxShiftQuarters: config.AppConfig.MaxShiftQuarters,
	}
	if cfg.LaborCostCeiling <= 0 {
		cfg.LaborCostCeiling = 0.23
	}
	if cfg.MinShiftQuarters <= 0 {
		cfg.MinShiftQuarters = 12
	}
	if min, err := parseClock(config.AppConfig.ShiftHandoffTime); err == nil {
		cfg.HandoffMin = min
	}
	for _, window := range []string{config.AppConfig.StandbyAfternoon, config.AppConfig.StandbyEvening} {
		if w, ok := parseWindow(window); ok {
			cfg.StandbyWindows = append(cfg.StandbyWindows, w)
		}
	}
	return cfg
}

func parseWindow(s string) (StandbyWindow, bool) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return StandbyWindow{}, false
	}
	start, err1 := parseClock(strings.TrimSpace(from))
	end, err2 := parseClock(strings.TrimSpace(to))
	if err1 != nil || err2 != nil || end <= start {
		return StandbyWindow{}, false
	}
	return StandbyWindow{Start: start, End: end}, true
}
