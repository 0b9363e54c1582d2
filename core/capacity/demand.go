package capacity

import (
	"sort"

	"github.com/crewplan/crewplan/core/model"
)

// SkillDemand counts how often a skill is required by projects, held by
// employees and exercised by at least one assignment.
type SkillDemand struct {
	Skill     model.Skill `json:"skill"`
	Required  int         `json:"required"`
	Available int         `json:"available"`
	Utilized  int         `json:"utilized"`
}

// AnalyzeSkillDemand tallies demand versus supply for every skill seen in the
// store, sorted by skill name.
func (a *Analyzer) AnalyzeSkillDemand() []SkillDemand {
	tally := make(map[model.Skill]*SkillDemand)
	get := func(s model.Skill) *SkillDemand {
		if d, ok := tally[s]; ok {
			return d
		}
		d := &SkillDemand{Skill: s}
		tally[s] = d
		return d
	}

	for _, p := range a.store.Projects() {
		for _, s := range p.RequiredSkills {
			get(s).Required++
		}
	}
	for _, e := range a.store.Employees() {
		for _, s := range e.Skills {
			get(s).Available++
			if len(e.Assignments) > 0 {
				get(s).Utilized++
			}
		}
	}

	out := make([]SkillDemand, 0, len(tally))
	for _, d := range tally {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Skill < out[j].Skill })
	return out
}

// ShortageRatio is the demand/supply ratio above which a skill is flagged as
// a bottleneck.
const ShortageRatio = 1.5

// SkillShortages returns the skills whose demand exceeds supply by more than
// ShortageRatio. Skills held by nobody are always shortages when required.
func (a *Analyzer) SkillShortages() []SkillDemand {
	var out []SkillDemand
	for _, d := range a.AnalyzeSkillDemand() {
		if d.Required == 0 {
			continue
		}
		if d.Available == 0 || float64(d.Required)/float64(d.Available) > ShortageRatio {
			out = append(out, d)
		}
	}
	return out
}
