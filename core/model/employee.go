package model

import "fmt"

// Skill is a labeled capability an employee holds and a project requires
// one-for-one.
type Skill string

// Employee represents a worker holding a set of skills. The hour ledger and
// assignment list are mutated only by the scheduling engine during a run.
type Employee struct {
	ID            int
	Name          string
	Skills        []Skill
	RegularHours  float64
	OvertimeHours float64
	Assignments   []Assignment
	Unavailable   []Interval
}

// NewEmployee validates and builds an Employee with a fresh ledger.
func NewEmployee(id int, name string, skills []Skill) (*Employee, error) {
	if len(skills) == 0 {
		return nil, fmt.Errorf("employee %d: at least one skill is required", id)
	}
	seen := make(map[Skill]struct{}, len(skills))
	for _, s := range skills {
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("employee %d: duplicate skill %q", id, s)
		}
		seen[s] = struct{}{}
	}
	return &Employee{ID: id, Name: name, Skills: append([]Skill(nil), skills...)}, nil
}

// HasSkill reports whether the employee holds the given skill.
func (e *Employee) HasSkill(skill Skill) bool {
	for _, s := range e.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// IsAvailable reports whether the interval overlaps neither an existing
// assignment nor an unavailability window.
func (e *Employee) IsAvailable(iv Interval) bool {
	for _, u := range e.Unavailable {
		if iv.Overlaps(u) {
			return false
		}
	}
	for _, a := range e.Assignments {
		if iv.Overlaps(a.Interval) {
			return false
		}
	}
	return true
}

// TotalHours returns the sum of regular and overtime hours recorded so far.
func (e *Employee) TotalHours() float64 {
	return e.RegularHours + e.OvertimeHours
}

// HoursOnDay sums the durations of recorded assignments whose interval starts
// on the same calendar day as day.
func (e *Employee) HoursOnDay(day Interval) float64 {
	d := day.Day()
	var total float64
	for _, a := range e.Assignments {
		if a.Interval.Day().Equal(d) {
			total += a.Interval.DurationHours()
		}
	}
	return total
}

// OvertimePercentage returns the share of worked hours that were overtime.
// Employees with zero total hours report 0.
func (e *Employee) OvertimePercentage() float64 {
	total := e.TotalHours()
	if total <= 0 {
		return 0
	}
	return e.OvertimeHours / total * 100
}

func (e *Employee) clone() *Employee {
	cp := *e
	cp.Skills = append([]Skill(nil), e.Skills...)
	cp.Assignments = append([]Assignment(nil), e.Assignments...)
	cp.Unavailable = append([]Interval(nil), e.Unavailable...)
	return &cp
}
