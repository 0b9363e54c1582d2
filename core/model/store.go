package model

import (
	"fmt"
	"sort"
)

// Store owns the employee and project collections for one planning run.
// It is not safe for concurrent mutation; parallel runs must each operate on
// their own Clone.
type Store struct {
	employees map[int]*Employee
	projects  map[int]*Project
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		employees: make(map[int]*Employee),
		projects:  make(map[int]*Project),
	}
}

// AddEmployee registers an employee, rejecting duplicate ids.
func (s *Store) AddEmployee(e *Employee) error {
	if _, exists := s.employees[e.ID]; exists {
		return fmt.Errorf("employee %d already registered", e.ID)
	}
	s.employees[e.ID] = e
	return nil
}

// AddProject registers a project, rejecting duplicate ids.
func (s *Store) AddProject(p *Project) error {
	if _, exists := s.projects[p.ID]; exists {
		return fmt.Errorf("project %d already registered", p.ID)
	}
	s.projects[p.ID] = p
	return nil
}

// Employee returns the employee with the given id, or nil.
func (s *Store) Employee(id int) *Employee { return s.employees[id] }

// Project returns the project with the given id, or nil.
func (s *Store) Project(id int) *Project { return s.projects[id] }

// Employees returns all employees sorted by id.
func (s *Store) Employees() []*Employee {
	out := make([]*Employee, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Projects returns all projects sorted by id.
func (s *Store) Projects() []*Project {
	out := make([]*Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AvailableEmployees returns the employees holding skill whose recorded
// assignments and unavailability windows do not overlap iv, sorted by id.
func (s *Store) AvailableEmployees(iv Interval, skill Skill) []*Employee {
	var out []*Employee
	for _, e := range s.Employees() {
		if e.HasSkill(skill) && e.IsAvailable(iv) {
			out = append(out, e)
		}
	}
	return out
}

// Clone returns a deep, fully independent copy of the store, suitable for a
// parallel scheduling run.
func (s *Store) Clone() *Store {
	cp := NewStore()
	for id, e := range s.employees {
		cp.employees[id] = e.clone()
	}
	for id, p := range s.projects {
		cp.projects[id] = p.clone()
	}
	return cp
}

// ScheduleValidation summarises a post-scheduling consistency check.
type ScheduleValidation struct {
	Valid                bool
	Errors               []string
	Warnings             []string
	TotalEmployees       int
	TotalProjects        int
	FullyStaffedProjects int
	TotalAssignments     int
}

// ValidateSchedule checks the no-double-booking invariant across every
// employee and reports staffing gaps as warnings.
func (s *Store) ValidateSchedule() ScheduleValidation {
	v := ScheduleValidation{Valid: true}
	for _, e := range s.Employees() {
		assignments := append([]Assignment(nil), e.Assignments...)
		sort.Slice(assignments, func(i, j int) bool {
			return assignments[i].Interval.Start.Before(assignments[j].Interval.Start)
		})
		for i := 0; i+1 < len(assignments); i++ {
			if assignments[i].Interval.Overlaps(assignments[i+1].Interval) {
				v.Valid = false
				v.Errors = append(v.Errors, fmt.Sprintf(
					"employee %s has overlapping assignments: project %d and project %d",
					e.Name, assignments[i].ProjectID, assignments[i+1].ProjectID))
			}
		}
	}
	var unstaffed, staffed, total int
	for _, p := range s.Projects() {
		total += len(p.AssignedIDs)
		if p.IsFullyStaffed() {
			staffed++
		} else {
			unstaffed++
		}
	}
	if unstaffed > 0 {
		v.Warnings = append(v.Warnings, fmt.Sprintf("%d projects are not fully staffed", unstaffed))
	}
	v.TotalEmployees = len(s.employees)
	v.TotalProjects = len(s.projects)
	v.FullyStaffedProjects = staffed
	v.TotalAssignments = total
	return v
}
