package schedule

import (
	"gonum.org/v1/gonum/stat"

	"github.com/crewplan/crewplan/core/model"
)

// Result summarises one scheduling pass. Project ids appear in processing
// order, which is fully deterministic.
type Result struct {
	RunID            string `json:"run_id"`
	ScheduledCount   int    `json:"scheduled_count"`
	PartiallyStaffed []int  `json:"partially_staffed"`
	Failed           []int  `json:"failed"`
	// Unattempted lists projects skipped because the run was cancelled before
	// reaching them. They keep their Pending status.
	Unattempted []int                 `json:"unattempted,omitempty"`
	Unfilled    map[int][]model.Skill `json:"unfilled,omitempty"`
	Stats       Stats                 `json:"stats"`
}

// Stats carries aggregate figures over the post-scheduling store.
type Stats struct {
	TotalEmployees        int     `json:"total_employees"`
	TotalProjects         int     `json:"total_projects"`
	FullyStaffedProjects  int     `json:"fully_staffed_projects"`
	TotalRegularHours     float64 `json:"total_regular_hours"`
	TotalOvertimeHours    float64 `json:"total_overtime_hours"`
	EmployeesWithOvertime int     `json:"employees_with_overtime"`
	MeanHours             float64 `json:"mean_hours"`
	HoursStdDev           float64 `json:"hours_std_dev"`
}

func computeStats(store *model.Store) Stats {
	employees := store.Employees()
	s := Stats{
		TotalEmployees: len(employees),
		TotalProjects:  len(store.Projects()),
	}
	for _, p := range store.Projects() {
		if p.IsFullyStaffed() {
			s.FullyStaffedProjects++
		}
	}
	hours := make([]float64, 0, len(employees))
	for _, e := range employees {
		s.TotalRegularHours += e.RegularHours
		s.TotalOvertimeHours += e.OvertimeHours
		if e.OvertimeHours > 0 {
			s.EmployeesWithOvertime++
		}
		hours = append(hours, e.TotalHours())
	}
	if len(hours) > 0 {
		s.MeanHours = stat.Mean(hours, nil)
		s.HoursStdDev = stat.PopStdDev(hours, nil)
	}
	return s
}
