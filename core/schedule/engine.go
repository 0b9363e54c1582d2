package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/crewplan/crewplan/core/logger"
	"github.com/crewplan/crewplan/core/model"
)

// idleHoursCap exceeds any feasible per-employee total so that less-loaded
// employees always win the workload-balance term.
const idleHoursCap = 1 << 16

// Engine assigns employees to projects using a single greedy pass. It holds
// the store reference only for the duration of one Schedule call.
type Engine struct {
	cfg Config
	log logger.Logger
}

// NewEngine validates the configuration and returns an Engine.
func NewEngine(cfg Config, log logger.Logger) (*Engine, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("schedule config: %w", err)
	}
	return &Engine{cfg: cfg, log: log}, nil
}

// Schedule processes every project once, in deterministic order, filling
// skill slots with the best-scoring available employees. Staffing shortfalls
// are recorded in the result, never returned as errors. Cancellation is
// honoured between project iterations; the skipped projects are reported as
// unattempted and the returned error is the context's.
func (e *Engine) Schedule(ctx context.Context, store *model.Store) (Result, error) {
	res := Result{
		RunID:    uuid.NewString(),
		Unfilled: make(map[int][]model.Skill),
	}

	projects := store.Projects()
	sort.Slice(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if !a.Interval.Start.Equal(b.Interval.Start) {
			return a.Interval.Start.Before(b.Interval.Start)
		}
		return a.ID < b.ID
	})

	for i, p := range projects {
		select {
		case <-ctx.Done():
			for _, rest := range projects[i:] {
				res.Unattempted = append(res.Unattempted, rest.ID)
			}
			res.Stats = computeStats(store)
			return res, ctx.Err()
		default:
		}
		e.scheduleProject(store, p, &res)
	}

	res.Stats = computeStats(store)
	e.log.Infof("run %s: %d scheduled, %d partial, %d failed",
		res.RunID, res.ScheduledCount, len(res.PartiallyStaffed), len(res.Failed))
	return res, nil
}

func (e *Engine) scheduleProject(store *model.Store, p *model.Project, res *Result) {
	for _, skill := range p.RequiredSkills {
		if p.SkillFilled(skill) {
			continue
		}
		candidates := store.AvailableEmployees(p.Interval, skill)
		if len(candidates) == 0 {
			res.Unfilled[p.ID] = append(res.Unfilled[p.ID], skill)
			e.log.Debugw("no candidate for skill", map[string]any{
				"project": p.ID, "skill": string(skill),
			})
			continue
		}
		best := e.pickBest(candidates, p)
		e.record(best, p, skill)
	}

	switch {
	case p.IsFullyStaffed():
		p.Status = model.StatusScheduled
		res.ScheduledCount++
	case len(p.AssignedIDs) > 0:
		p.Status = model.StatusPartiallyStaffed
		res.PartiallyStaffed = append(res.PartiallyStaffed, p.ID)
	default:
		p.Status = model.StatusFailed
		res.Failed = append(res.Failed, p.ID)
	}
	if len(res.Unfilled[p.ID]) == 0 {
		delete(res.Unfilled, p.ID)
	}
}

// pickBest returns the maximum-scoring candidate. Candidates arrive sorted by
// id, so keeping only strictly greater scores breaks exact ties on lowest id.
func (e *Engine) pickBest(candidates []*model.Employee, p *model.Project) *model.Employee {
	best := candidates[0]
	bestScore := e.score(best, p)
	for _, c := range candidates[1:] {
		if s := e.score(c, p); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}

// score favours idle employees across days and same-day regular-hour headroom
// within a day. The headroom weight dominates marginal workload differences
// so overtime is avoided first.
func (e *Engine) score(emp *model.Employee, p *model.Project) float64 {
	idle := idleHoursCap - emp.TotalHours()
	headroom := e.cfg.RegularHoursPerDay - emp.HoursOnDay(p.Interval)
	if headroom < 0 {
		headroom = 0
	}
	return e.cfg.WeightIdle*idle + e.cfg.WeightDailyHeadroom*headroom
}

// record creates the assignment, splits its hours against the employee's
// same-day total and updates both sides of the relation.
func (e *Engine) record(emp *model.Employee, p *model.Project, skill model.Skill) {
	duration := p.Interval.DurationHours()
	regular, overtime := splitHours(duration, emp.HoursOnDay(p.Interval), e.cfg.RegularHoursPerDay)

	emp.Assignments = append(emp.Assignments, model.Assignment{
		EmployeeID:    emp.ID,
		ProjectID:     p.ID,
		Interval:      p.Interval,
		RegularHours:  regular,
		OvertimeHours: overtime,
	})
	emp.RegularHours += regular
	emp.OvertimeHours += overtime
	p.FillSkill(skill, emp.ID)
}

// splitHours applies the day-boundary rule: hours up to the daily threshold
// are regular, the remainder is overtime. The interval is attributed wholly
// to its start day.
func splitHours(duration, priorHoursOnDay, regularPerDay float64) (regular, overtime float64) {
	regular = regularPerDay - priorHoursOnDay
	if regular < 0 {
		regular = 0
	}
	if regular > duration {
		regular = duration
	}
	return regular, duration - regular
}
