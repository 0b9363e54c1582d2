package capacity

import (
	"fmt"
	"math"
)

// SizingRecommendation is the workforce-size advice derived from utilization
// and overtime levels.
type SizingRecommendation struct {
	CurrentHeadcount     int     `json:"current_headcount"`
	RecommendedHeadcount int     `json:"recommended_headcount"`
	Reasoning            string  `json:"reasoning"`
	ExpectedCostImpact   float64 `json:"expected_cost_impact"`
	ExpectedOvertimeCut  float64 `json:"expected_overtime_reduction"`
	ConfidenceLevel      string  `json:"confidence_level"`
}

// RecommendWorkforceSize proposes a headcount change. High overtime suggests
// hiring, low utilization suggests reduction, otherwise the current size is
// kept.
func (a *Analyzer) RecommendWorkforceSize() SizingRecommendation {
	team := a.TeamUtilization()
	costs := a.Costs()
	current := team.TotalEmployees

	if team.TotalOvertimeHours > 0 && team.TotalHoursWorked > 0 {
		overtimePct := team.TotalOvertimeHours / team.TotalHoursWorked * 100
		if overtimePct > 15 {
			additional := int(math.Round(team.TotalOvertimeHours / a.HoursPerPeriod()))
			if additional < 1 {
				additional = 1
			}
			cmp := a.CompareOvertimeVsHiring(additional)
			confidence := "medium"
			if overtimePct > 20 {
				confidence = "high"
			}
			return SizingRecommendation{
				CurrentHeadcount:     current,
				RecommendedHeadcount: current + additional,
				Reasoning: fmt.Sprintf(
					"High overtime (%.1f%%) detected. Hiring %d additional employees would reduce overtime and potentially lower costs.",
					overtimePct, additional),
				ExpectedCostImpact:  cmp.NetCost,
				ExpectedOvertimeCut: cmp.OvertimeEliminatedHours,
				ConfidenceLevel:     confidence,
			}
		}
	}

	if team.AverageUtilization < 60 && current > 0 {
		optimal := int(math.Round(team.TotalHoursWorked / a.HoursPerPeriod()))
		if reduction := current - optimal; reduction > 0 {
			return SizingRecommendation{
				CurrentHeadcount:     current,
				RecommendedHeadcount: optimal,
				Reasoning: fmt.Sprintf(
					"Low average utilization (%.1f%%). Workforce could be reduced by %d employees.",
					team.AverageUtilization, reduction),
				ExpectedCostImpact: -float64(reduction) * team.AvgCostPerEmployee,
				ConfidenceLevel:    "medium",
			}
		}
	}

	return SizingRecommendation{
		CurrentHeadcount:     current,
		RecommendedHeadcount: current,
		Reasoning: fmt.Sprintf(
			"Current workforce size is appropriate. Average utilization is %.1f%% with %.1f%% overtime costs.",
			team.AverageUtilization, costs.OvertimeCostPercentage),
		ConfidenceLevel: "high",
	}
}
