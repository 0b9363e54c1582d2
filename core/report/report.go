package report

import "github.com/crewplan/crewplan/core/capacity"

// CapacityReport is the read-only snapshot handed to reporting layers. A new
// schedule run produces a new report; the structure is never mutated after
// assembly.
type CapacityReport struct {
	Summary         Summary                    `json:"summary"`
	TeamMetrics     capacity.TeamMetrics       `json:"team_metrics"`
	CostAnalysis    capacity.CostAnalysis      `json:"cost_analysis"`
	WorkforceSizing WorkforceSizing            `json:"workforce_sizing"`
	TopUtilized     []UtilizedEmployee         `json:"top_utilized_employees"`
	Underutilized   []capacity.EmployeeMetrics `json:"underutilized_employees"`
	Overworked      []capacity.EmployeeMetrics `json:"overworked_employees"`
	OvertimeHiring  capacity.HiringComparison  `json:"overtime_vs_hiring"`
	Recommendations []string                   `json:"recommendations"`
}

// Summary carries the headline figures of the report.
type Summary struct {
	AnalysisPeriodDays     int     `json:"analysis_period_days"`
	TotalEmployees         int     `json:"total_employees"`
	ActiveEmployees        int     `json:"active_employees"`
	AverageUtilization     float64 `json:"average_utilization"`
	TotalCost              float64 `json:"total_cost"`
	OvertimeCostPercentage float64 `json:"overtime_cost_percentage"`
}

// WorkforceSizing is the headcount advice section.
type WorkforceSizing struct {
	CurrentHeadcount     int     `json:"current_headcount"`
	RecommendedHeadcount int     `json:"recommended_headcount"`
	Reasoning            string  `json:"reasoning"`
	ConfidenceLevel      string  `json:"confidence_level"`
	ExpectedCostImpact   float64 `json:"expected_cost_impact"`
}

// UtilizedEmployee is one row of the top-utilized ranking.
type UtilizedEmployee struct {
	Name               string  `json:"name"`
	UtilizationRate    float64 `json:"utilization_rate"`
	OvertimePercentage float64 `json:"overtime_percentage"`
	TotalHours         float64 `json:"total_hours"`
}
