package model

import "fmt"

// ProjectStatus tracks the staffing outcome of a project.
type ProjectStatus string

const (
	StatusPending          ProjectStatus = "Pending"
	StatusScheduled        ProjectStatus = "Scheduled"
	StatusPartiallyStaffed ProjectStatus = "PartiallyStaffed"
	StatusFailed           ProjectStatus = "Failed"
)

// ErrInvalidSkills indicates a project declaring the wrong number of required
// skills or duplicates among them.
var ErrInvalidSkills = fmt.Errorf("invalid required skills")

// Project is a fixed-interval job requiring a configured number of distinct
// skills, one employee per skill slot.
type Project struct {
	ID             int
	Name           string
	Interval       Interval
	RequiredSkills []Skill
	AssignedIDs    []int
	Status         ProjectStatus
	Priority       int
	IsFixed        bool

	// filled maps a required skill to the employee covering it.
	filled map[Skill]int
}

// NewProject validates and builds a Project. The required skill list must
// contain exactly skillsPerProject distinct entries.
func NewProject(id int, name string, iv Interval, required []Skill, priority int, skillsPerProject int) (*Project, error) {
	if len(required) != skillsPerProject {
		return nil, fmt.Errorf("%w: project %d declares %d skills, want %d", ErrInvalidSkills, id, len(required), skillsPerProject)
	}
	seen := make(map[Skill]struct{}, len(required))
	for _, s := range required {
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: project %d declares duplicate skill %q", ErrInvalidSkills, id, s)
		}
		seen[s] = struct{}{}
	}
	return &Project{
		ID:             id,
		Name:           name,
		Interval:       iv,
		RequiredSkills: append([]Skill(nil), required...),
		Status:         StatusPending,
		Priority:       priority,
		IsFixed:        true,
		filled:         make(map[Skill]int),
	}, nil
}

// SkillFilled reports whether the given required skill slot already has an
// assigned employee.
func (p *Project) SkillFilled(skill Skill) bool {
	_, ok := p.filled[skill]
	return ok
}

// FillSkill records employeeID as covering the given skill slot.
func (p *Project) FillSkill(skill Skill, employeeID int) {
	if p.filled == nil {
		p.filled = make(map[Skill]int)
	}
	p.filled[skill] = employeeID
	p.AssignedIDs = append(p.AssignedIDs, employeeID)
}

// MissingSkills returns the required skills with no assigned employee, in
// declaration order.
func (p *Project) MissingSkills() []Skill {
	var missing []Skill
	for _, s := range p.RequiredSkills {
		if !p.SkillFilled(s) {
			missing = append(missing, s)
		}
	}
	return missing
}

// IsFullyStaffed reports whether every required skill slot is filled.
func (p *Project) IsFullyStaffed() bool {
	return len(p.filled) == len(p.RequiredSkills)
}

func (p *Project) clone() *Project {
	cp := *p
	cp.RequiredSkills = append([]Skill(nil), p.RequiredSkills...)
	cp.AssignedIDs = append([]int(nil), p.AssignedIDs...)
	cp.filled = make(map[Skill]int, len(p.filled))
	for k, v := range p.filled {
		cp.filled[k] = v
	}
	return &cp
}
