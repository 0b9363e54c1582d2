package capacity

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/crewplan/crewplan/core/model"
)

// regularHoursPerDay is the daily capacity used to size the analysis period.
const regularHoursPerDay = 8

// Analyzer derives utilization, cost and sizing figures from a
// post-scheduling store. It only reads the store and never mutates ledgers.
type Analyzer struct {
	store *model.Store
	cfg   Config
}

// NewAnalyzer validates the configuration and returns an Analyzer bound to
// the given store.
func NewAnalyzer(store *model.Store, cfg Config) (*Analyzer, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("capacity config: %w", err)
	}
	return &Analyzer{store: store, cfg: cfg}, nil
}

// Config returns the effective configuration after defaulting.
func (a *Analyzer) Config() Config { return a.cfg }

// HoursPerPeriod returns the theoretical hours one employee can work over the
// analysis period.
func (a *Analyzer) HoursPerPeriod() float64 {
	return float64(a.cfg.AnalysisPeriodDays) * regularHoursPerDay
}

// EmployeeMetrics is a per-employee utilization snapshot.
type EmployeeMetrics struct {
	EmployeeID         int     `json:"employee_id"`
	Name               string  `json:"name"`
	TotalHours         float64 `json:"total_hours"`
	RegularHours       float64 `json:"regular_hours"`
	OvertimeHours      float64 `json:"overtime_hours"`
	UtilizationRate    float64 `json:"utilization_rate"`
	OvertimePercentage float64 `json:"overtime_percentage"`
	NumAssignments     int     `json:"num_assignments"`
	TotalCost          float64 `json:"total_cost"`
}

// EmployeeUtilization computes the metrics snapshot for one employee.
func (a *Analyzer) EmployeeUtilization(e *model.Employee) EmployeeMetrics {
	return EmployeeMetrics{
		EmployeeID:         e.ID,
		Name:               e.Name,
		TotalHours:         e.TotalHours(),
		RegularHours:       e.RegularHours,
		OvertimeHours:      e.OvertimeHours,
		UtilizationRate:    e.TotalHours() / a.HoursPerPeriod() * 100,
		OvertimePercentage: e.OvertimePercentage(),
		NumAssignments:     len(e.Assignments),
		TotalCost:          e.RegularHours*a.cfg.RegularRate + e.OvertimeHours*a.cfg.OvertimeRate,
	}
}

// TeamMetrics aggregates utilization over the whole workforce.
type TeamMetrics struct {
	TotalEmployees     int     `json:"total_employees"`
	ActiveEmployees    int     `json:"active_employees"`
	IdleEmployees      int     `json:"idle_employees"`
	TotalHoursWorked   float64 `json:"total_hours_worked"`
	TotalRegularHours  float64 `json:"total_regular_hours"`
	TotalOvertimeHours float64 `json:"total_overtime_hours"`
	AverageUtilization float64 `json:"average_utilization"`
	UtilizationStdDev  float64 `json:"utilization_std_dev"`
	TotalCost          float64 `json:"total_cost"`
	AvgCostPerEmployee float64 `json:"average_cost_per_employee"`
}

// TeamUtilization computes the mean and population standard deviation of
// per-employee utilization alongside hour and cost totals.
func (a *Analyzer) TeamUtilization() TeamMetrics {
	employees := a.store.Employees()
	m := TeamMetrics{TotalEmployees: len(employees)}
	if len(employees) == 0 {
		return m
	}
	rates := make([]float64, 0, len(employees))
	for _, e := range employees {
		if len(e.Assignments) > 0 {
			m.ActiveEmployees++
		}
		m.TotalRegularHours += e.RegularHours
		m.TotalOvertimeHours += e.OvertimeHours
		rates = append(rates, a.EmployeeUtilization(e).UtilizationRate)
	}
	m.IdleEmployees = m.TotalEmployees - m.ActiveEmployees
	m.TotalHoursWorked = m.TotalRegularHours + m.TotalOvertimeHours
	m.AverageUtilization = stat.Mean(rates, nil)
	m.UtilizationStdDev = stat.PopStdDev(rates, nil)
	m.TotalCost = m.TotalRegularHours*a.cfg.RegularRate + m.TotalOvertimeHours*a.cfg.OvertimeRate
	m.AvgCostPerEmployee = m.TotalCost / float64(m.TotalEmployees)
	return m
}

// Underutilized returns employees below the utilization threshold, sorted
// ascending by utilization.
func (a *Analyzer) Underutilized() []EmployeeMetrics {
	var out []EmployeeMetrics
	for _, e := range a.store.Employees() {
		m := a.EmployeeUtilization(e)
		if m.UtilizationRate < a.cfg.UnderutilizedThreshold {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UtilizationRate < out[j].UtilizationRate
	})
	return out
}

// Overworked returns employees whose overtime share exceeds the threshold,
// sorted descending. Employees with zero total hours have an undefined ratio
// and are excluded rather than reported.
func (a *Analyzer) Overworked() []EmployeeMetrics {
	var out []EmployeeMetrics
	for _, e := range a.store.Employees() {
		if e.TotalHours() <= 0 {
			continue
		}
		m := a.EmployeeUtilization(e)
		if m.OvertimePercentage > a.cfg.OverworkedThreshold {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OvertimePercentage > out[j].OvertimePercentage
	})
	return out
}

// AllMetrics returns every employee's snapshot sorted descending by
// utilization.
func (a *Analyzer) AllMetrics() []EmployeeMetrics {
	employees := a.store.Employees()
	out := make([]EmployeeMetrics, 0, len(employees))
	for _, e := range employees {
		out = append(out, a.EmployeeUtilization(e))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UtilizationRate > out[j].UtilizationRate
	})
	return out
}

// CostAnalysis breaks the workforce cost into regular and overtime parts.
type CostAnalysis struct {
	RegularCost            float64 `json:"regular_cost"`
	OvertimeCost           float64 `json:"overtime_cost"`
	TotalCost              float64 `json:"total_cost"`
	OvertimeCostPercentage float64 `json:"overtime_cost_percentage"`
	CostPerProject         float64 `json:"cost_per_project"`
	CostPerHour            float64 `json:"cost_per_hour"`
}

// Costs computes the cost totals at the configured rates.
func (a *Analyzer) Costs() CostAnalysis {
	var regular, overtime float64
	for _, e := range a.store.Employees() {
		regular += e.RegularHours
		overtime += e.OvertimeHours
	}
	c := CostAnalysis{
		RegularCost:  regular * a.cfg.RegularRate,
		OvertimeCost: overtime * a.cfg.OvertimeRate,
	}
	c.TotalCost = c.RegularCost + c.OvertimeCost
	if c.TotalCost > 0 {
		c.OvertimeCostPercentage = c.OvertimeCost / c.TotalCost * 100
	}
	var staffed int
	for _, p := range a.store.Projects() {
		if p.IsFullyStaffed() {
			staffed++
		}
	}
	if staffed > 0 {
		c.CostPerProject = c.TotalCost / float64(staffed)
	}
	if total := regular + overtime; total > 0 {
		c.CostPerHour = c.TotalCost / total
	}
	return c
}

// HiringComparison models the break-even between paying overtime and hiring
// additional employees.
type HiringComparison struct {
	AdditionalEmployees     int     `json:"additional_employees"`
	HiringCost              float64 `json:"hiring_cost"`
	OvertimeEliminatedHours float64 `json:"overtime_eliminated_hours"`
	OvertimeSavings         float64 `json:"overtime_savings"`
	NetCost                 float64 `json:"net_cost"`
	// Recommendation is "hire" when hiring is cheaper than the eliminated
	// overtime, "retain overtime" otherwise.
	Recommendation     string  `json:"recommendation"`
	BreakEvenEmployees float64 `json:"break_even_employees"`
}

// CompareOvertimeVsHiring evaluates hiring additionalEmployees against the
// current overtime bill. BreakEvenEmployees is the fractional headcount at
// which the two costs cross; callers round up for an actionable figure.
func (a *Analyzer) CompareOvertimeVsHiring(additionalEmployees int) HiringComparison {
	var totalOvertime float64
	for _, e := range a.store.Employees() {
		totalOvertime += e.OvertimeHours
	}
	perPeriod := a.HoursPerPeriod()

	eliminated := float64(additionalEmployees) * perPeriod
	if eliminated > totalOvertime {
		eliminated = totalOvertime
	}
	savings := eliminated * (a.cfg.OvertimeRate - a.cfg.RegularRate)
	hiringCost := float64(additionalEmployees) * perPeriod * a.cfg.RegularRate

	cmp := HiringComparison{
		AdditionalEmployees:     additionalEmployees,
		HiringCost:              hiringCost,
		OvertimeEliminatedHours: eliminated,
		OvertimeSavings:         savings,
		NetCost:                 hiringCost - savings,
		BreakEvenEmployees:      totalOvertime * a.cfg.OvertimeRate / (perPeriod * a.cfg.RegularRate),
	}
	if cmp.NetCost < 0 {
		cmp.Recommendation = "hire"
	} else {
		cmp.Recommendation = "retain overtime"
	}
	return cmp
}
