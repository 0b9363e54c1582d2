package schedule

import "fmt"

// Config defines planning parameters for the greedy engine.
type Config struct {
	// RegularHoursPerDay is the daily threshold beyond which hours count as
	// overtime.
	RegularHoursPerDay float64 `json:"regular_hours_per_day"`
	// SkillsPerProject is the number of distinct skills every project must
	// declare.
	SkillsPerProject int `json:"skills_per_project"`
	// WeightIdle scales the workload-balance term of the candidate score.
	WeightIdle float64 `json:"weight_idle"`
	// WeightDailyHeadroom scales the overtime-avoidance term of the candidate
	// score.
	WeightDailyHeadroom float64 `json:"weight_daily_headroom"`
}

// SetDefaults applies the canonical planning parameters.
func (c *Config) SetDefaults() {
	if c.RegularHoursPerDay == 0 {
		c.RegularHoursPerDay = 8
	}
	if c.SkillsPerProject == 0 {
		c.SkillsPerProject = 5
	}
	if c.WeightIdle == 0 {
		c.WeightIdle = 1
	}
	if c.WeightDailyHeadroom == 0 {
		c.WeightDailyHeadroom = 100
	}
}

// Validate checks that all parameters are positive.
func (c Config) Validate() error {
	if c.RegularHoursPerDay <= 0 {
		return fmt.Errorf("regular_hours_per_day must be positive")
	}
	if c.SkillsPerProject <= 0 {
		return fmt.Errorf("skills_per_project must be positive")
	}
	if c.WeightIdle <= 0 || c.WeightDailyHeadroom <= 0 {
		return fmt.Errorf("score weights must be positive")
	}
	return nil
}
