// Package dataset loads employee and project rosters from JSON or YAML files
// into an entity store. It is the seam between external data sources and the
// planning core; entity construction errors reject the whole load.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/crewplan/crewplan/core/model"
)

// Roster is the on-disk shape of a planning dataset.
type Roster struct {
	Employees []EmployeeRecord `json:"employees" yaml:"employees"`
	Projects  []ProjectRecord  `json:"projects" yaml:"projects"`
}

// EmployeeRecord describes one employee entry.
type EmployeeRecord struct {
	ID          int              `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Skills      []string         `json:"skills" yaml:"skills"`
	Unavailable []IntervalRecord `json:"unavailable,omitempty" yaml:"unavailable,omitempty"`
}

// ProjectRecord describes one project entry.
type ProjectRecord struct {
	ID             int       `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Start          time.Time `json:"start" yaml:"start"`
	End            time.Time `json:"end" yaml:"end"`
	RequiredSkills []string  `json:"required_skills" yaml:"required_skills"`
	Priority       int       `json:"priority" yaml:"priority"`
}

// IntervalRecord is a serialized time range.
type IntervalRecord struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// Load reads a roster file and builds a populated store. skillsPerProject is
// the configured required-skill count enforced at project registration.
func Load(path string, skillsPerProject int) (*model.Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var roster Roster
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &roster)
	case ".json":
		err = json.Unmarshal(b, &roster)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return Build(roster, skillsPerProject)
}

// Build converts a parsed roster into a store, validating every entity.
func Build(roster Roster, skillsPerProject int) (*model.Store, error) {
	store := model.NewStore()
	for _, rec := range roster.Employees {
		emp, err := model.NewEmployee(rec.ID, rec.Name, toSkills(rec.Skills))
		if err != nil {
			return nil, err
		}
		for _, u := range rec.Unavailable {
			iv, err := model.NewInterval(u.Start, u.End)
			if err != nil {
				return nil, fmt.Errorf("employee %d unavailability: %w", rec.ID, err)
			}
			emp.Unavailable = append(emp.Unavailable, iv)
		}
		if err := store.AddEmployee(emp); err != nil {
			return nil, err
		}
	}
	for _, rec := range roster.Projects {
		iv, err := model.NewInterval(rec.Start, rec.End)
		if err != nil {
			return nil, fmt.Errorf("project %d interval: %w", rec.ID, err)
		}
		proj, err := model.NewProject(rec.ID, rec.Name, iv, toSkills(rec.RequiredSkills), rec.Priority, skillsPerProject)
		if err != nil {
			return nil, err
		}
		if err := store.AddProject(proj); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func toSkills(names []string) []model.Skill {
	out := make([]model.Skill, len(names))
	for i, n := range names {
		out[i] = model.Skill(n)
	}
	return out
}
