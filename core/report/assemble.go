package report

import (
	"fmt"

	"github.com/crewplan/crewplan/core/capacity"
)

// topUtilizedCount limits the top-utilized ranking length.
const topUtilizedCount = 5

// Assemble packages the analyzer's output into a CapacityReport.
func Assemble(a *capacity.Analyzer) CapacityReport {
	team := a.TeamUtilization()
	costs := a.Costs()
	sizing := a.RecommendWorkforceSize()
	all := a.AllMetrics()

	top := make([]UtilizedEmployee, 0, topUtilizedCount)
	for _, m := range all {
		if len(top) == topUtilizedCount {
			break
		}
		top = append(top, UtilizedEmployee{
			Name:               m.Name,
			UtilizationRate:    m.UtilizationRate,
			OvertimePercentage: m.OvertimePercentage,
			TotalHours:         m.TotalHours,
		})
	}

	return CapacityReport{
		Summary: Summary{
			AnalysisPeriodDays:     a.Config().AnalysisPeriodDays,
			TotalEmployees:         team.TotalEmployees,
			ActiveEmployees:        team.ActiveEmployees,
			AverageUtilization:     team.AverageUtilization,
			TotalCost:              costs.TotalCost,
			OvertimeCostPercentage: costs.OvertimeCostPercentage,
		},
		TeamMetrics:  team,
		CostAnalysis: costs,
		WorkforceSizing: WorkforceSizing{
			CurrentHeadcount:     sizing.CurrentHeadcount,
			RecommendedHeadcount: sizing.RecommendedHeadcount,
			Reasoning:            sizing.Reasoning,
			ConfidenceLevel:      sizing.ConfidenceLevel,
			ExpectedCostImpact:   sizing.ExpectedCostImpact,
		},
		TopUtilized:     top,
		Underutilized:   a.Underutilized(),
		Overworked:      a.Overworked(),
		OvertimeHiring:  a.CompareOvertimeVsHiring(1),
		Recommendations: recommendations(a, team, all),
	}
}

// recommendations produces the free-text findings: workload imbalance, high
// overtime, skill shortages and idle headcount.
func recommendations(a *capacity.Analyzer, team capacity.TeamMetrics, all []capacity.EmployeeMetrics) []string {
	var recs []string

	if len(all) > 0 {
		mean := team.TotalHoursWorked / float64(len(all))
		max := all[0].TotalHours
		for _, m := range all {
			if m.TotalHours > max {
				max = m.TotalHours
			}
		}
		if max > mean*1.5 {
			recs = append(recs, fmt.Sprintf(
				"Workload imbalance detected: top employee has %.1f hours vs average of %.1f hours. Consider redistributing assignments.",
				max, mean))
		}
	}

	if team.TotalOvertimeHours > 0 && team.TotalHoursWorked > 0 {
		overtimePct := team.TotalOvertimeHours / team.TotalHoursWorked * 100
		if overtimePct > 10 {
			recs = append(recs, fmt.Sprintf(
				"High overtime usage (%.1f%%). Consider hiring additional staff to reduce overtime costs.",
				overtimePct))
		}
	}

	for _, d := range a.SkillShortages() {
		recs = append(recs, fmt.Sprintf(
			"Skill shortage in %s: %d positions needed but only %d available. Consider hiring or training employees in this skill.",
			d.Skill, d.Required, d.Available))
	}

	if team.IdleEmployees > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d employees have no assignments. Consider reducing workforce or finding additional projects.",
			team.IdleEmployees))
	}

	return recs
}
