package schedule

import (
	"sort"

	"github.com/crewplan/crewplan/core/model"
)

// Conflict is a pair of overlapping assignments held by one employee. A
// correct scheduling pass never produces any.
type Conflict struct {
	EmployeeID int
	First      model.Assignment
	Second     model.Assignment
}

// FindConflicts scans every employee for pairwise overlapping assignment
// intervals.
func FindConflicts(store *model.Store) []Conflict {
	var conflicts []Conflict
	for _, e := range store.Employees() {
		assignments := append([]model.Assignment(nil), e.Assignments...)
		sort.Slice(assignments, func(i, j int) bool {
			return assignments[i].Interval.Start.Before(assignments[j].Interval.Start)
		})
		for i := range assignments {
			for j := i + 1; j < len(assignments); j++ {
				if assignments[i].Interval.Overlaps(assignments[j].Interval) {
					conflicts = append(conflicts, Conflict{
						EmployeeID: e.ID,
						First:      assignments[i],
						Second:     assignments[j],
					})
				}
			}
		}
	}
	return conflicts
}
