package capacity

import "fmt"

// Config defines analysis parameters and billing rates.
type Config struct {
	// AnalysisPeriodDays is the horizon over which utilization is measured.
	AnalysisPeriodDays int `json:"analysis_period_days"`
	// UnderutilizedThreshold is the utilization percentage below which an
	// employee is flagged as underutilized.
	UnderutilizedThreshold float64 `json:"underutilized_threshold"`
	// OverworkedThreshold is the overtime percentage above which an employee
	// is flagged as overworked.
	OverworkedThreshold float64 `json:"overworked_threshold"`
	// RegularRate is the cost multiplier for regular hours.
	RegularRate float64 `json:"regular_rate"`
	// OvertimeRate is the cost multiplier for overtime hours.
	OvertimeRate float64 `json:"overtime_rate"`
}

// SetDefaults applies the canonical analysis parameters.
func (c *Config) SetDefaults() {
	if c.AnalysisPeriodDays == 0 {
		c.AnalysisPeriodDays = 365
	}
	if c.UnderutilizedThreshold == 0 {
		c.UnderutilizedThreshold = 50.0
	}
	if c.OverworkedThreshold == 0 {
		c.OverworkedThreshold = 20.0
	}
	if c.RegularRate == 0 {
		c.RegularRate = 1.0
	}
	if c.OvertimeRate == 0 {
		c.OvertimeRate = 1.3
	}
}

// Validate checks the period and rates.
func (c Config) Validate() error {
	if c.AnalysisPeriodDays <= 0 {
		return fmt.Errorf("analysis_period_days must be positive")
	}
	if c.RegularRate <= 0 {
		return fmt.Errorf("regular_rate must be positive")
	}
	if c.OvertimeRate < c.RegularRate {
		return fmt.Errorf("overtime_rate must be at least regular_rate")
	}
	return nil
}
