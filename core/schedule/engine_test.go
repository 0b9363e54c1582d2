package schedule

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/crewplan/crewplan/core/model"
	"github.com/crewplan/crewplan/infra/logger"
)

func interval(t *testing.T, day time.Time, hour, durHours int) model.Interval {
	t.Helper()
	iv, err := model.NewInterval(day.Add(time.Duration(hour)*time.Hour), day.Add(time.Duration(hour+durHours)*time.Hour))
	if err != nil {
		t.Fatalf("interval: %v", err)
	}
	return iv
}

func employee(t *testing.T, id int, skills ...model.Skill) *model.Employee {
	t.Helper()
	e, err := model.NewEmployee(id, "emp", skills)
	if err != nil {
		t.Fatalf("employee: %v", err)
	}
	return e
}

func project(t *testing.T, id, priority int, iv model.Interval, skills ...model.Skill) *model.Project {
	t.Helper()
	p, err := model.NewProject(id, "proj", iv, skills, priority, len(skills))
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	return p
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Config{}, logger.NopLogger{})
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return e
}

var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestScheduleSingleProjectFullDay(t *testing.T) {
	store := model.NewStore()
	emp := employee(t, 1, "A")
	if err := store.AddEmployee(emp); err != nil {
		t.Fatalf("add: %v", err)
	}
	p := project(t, 1, 5, interval(t, monday, 9, 8), "A")
	if err := store.AddProject(p); err != nil {
		t.Fatalf("add: %v", err)
	}

	res, err := newEngine(t).Schedule(context.Background(), store)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if res.ScheduledCount != 1 || p.Status != model.StatusScheduled {
		t.Fatalf("project not scheduled: %+v status=%s", res, p.Status)
	}
	if emp.RegularHours != 8 || emp.OvertimeHours != 0 {
		t.Fatalf("ledger = %.1f/%.1f, want 8/0", emp.RegularHours, emp.OvertimeHours)
	}
}

func TestScheduleSameDayOvertimeSplit(t *testing.T) {
	store := model.NewStore()
	emp := employee(t, 1, "A")
	if err := store.AddEmployee(emp); err != nil {
		t.Fatalf("add: %v", err)
	}
	first := project(t, 1, 5, interval(t, monday, 8, 6), "A")
	second := project(t, 2, 5, interval(t, monday, 14, 6), "A")
	for _, p := range []*model.Project{first, second} {
		if err := store.AddProject(p); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if _, err := newEngine(t).Schedule(context.Background(), store); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(emp.Assignments) != 2 {
		t.Fatalf("assignments = %d, want 2", len(emp.Assignments))
	}
	a1, a2 := emp.Assignments[0], emp.Assignments[1]
	if a1.RegularHours != 6 || a1.OvertimeHours != 0 {
		t.Fatalf("first split = %.1f/%.1f, want 6/0", a1.RegularHours, a1.OvertimeHours)
	}
	if a2.RegularHours != 2 || a2.OvertimeHours != 4 {
		t.Fatalf("second split = %.1f/%.1f, want 2/4", a2.RegularHours, a2.OvertimeHours)
	}
	if emp.RegularHours != 8 || emp.OvertimeHours != 4 {
		t.Fatalf("ledger = %.1f/%.1f, want 8/4", emp.RegularHours, emp.OvertimeHours)
	}
}

func TestSchedulePartialStaffing(t *testing.T) {
	store := model.NewStore()
	for i, skill := range []model.Skill{"A", "B", "C"} {
		if err := store.AddEmployee(employee(t, i+1, skill)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	p := project(t, 1, 5, interval(t, monday, 9, 8), "A", "B", "C", "D", "E")
	if err := store.AddProject(p); err != nil {
		t.Fatalf("add: %v", err)
	}

	res, err := newEngine(t).Schedule(context.Background(), store)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if p.Status != model.StatusPartiallyStaffed {
		t.Fatalf("status = %s, want PartiallyStaffed", p.Status)
	}
	if len(p.AssignedIDs) != 3 {
		t.Fatalf("assigned = %d, want 3", len(p.AssignedIDs))
	}
	if got := res.Unfilled[1]; !reflect.DeepEqual(got, []model.Skill{"D", "E"}) {
		t.Fatalf("unfilled = %v, want [D E]", got)
	}
	if len(res.PartiallyStaffed) != 1 || res.PartiallyStaffed[0] != 1 {
		t.Fatalf("partially staffed = %v", res.PartiallyStaffed)
	}
}

func TestScheduleFailedProject(t *testing.T) {
	store := model.NewStore()
	if err := store.AddEmployee(employee(t, 1, "X")); err != nil {
		t.Fatalf("add: %v", err)
	}
	p := project(t, 1, 5, interval(t, monday, 9, 8), "A")
	if err := store.AddProject(p); err != nil {
		t.Fatalf("add: %v", err)
	}

	res, err := newEngine(t).Schedule(context.Background(), store)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if p.Status != model.StatusFailed || len(res.Failed) != 1 {
		t.Fatalf("expected failed project, got status=%s result=%+v", p.Status, res)
	}
}

func TestScheduleNoDoubleBooking(t *testing.T) {
	store := model.NewStore()
	if err := store.AddEmployee(employee(t, 1, "A")); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Two overlapping projects compete for the only skill holder.
	first := project(t, 1, 9, interval(t, monday, 9, 4), "A")
	second := project(t, 2, 5, interval(t, monday, 10, 4), "A")
	for _, p := range []*model.Project{first, second} {
		if err := store.AddProject(p); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if _, err := newEngine(t).Schedule(context.Background(), store); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if first.Status != model.StatusScheduled {
		t.Fatalf("higher priority project lost: %s", first.Status)
	}
	if second.Status != model.StatusFailed {
		t.Fatalf("overlapping project must fail, got %s", second.Status)
	}
	if conflicts := FindConflicts(store); len(conflicts) != 0 {
		t.Fatalf("double booking detected: %+v", conflicts)
	}
}

func TestSchedulePrefersIdleEmployee(t *testing.T) {
	store := model.NewStore()
	busy := employee(t, 1, "A")
	busy.RegularHours = 8
	busy.Assignments = append(busy.Assignments, model.Assignment{
		EmployeeID: 1, ProjectID: 99, Interval: interval(t, monday.AddDate(0, 0, -1), 9, 8), RegularHours: 8,
	})
	idle := employee(t, 2, "A")
	for _, e := range []*model.Employee{busy, idle} {
		if err := store.AddEmployee(e); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	p := project(t, 1, 5, interval(t, monday, 9, 8), "A")
	if err := store.AddProject(p); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := newEngine(t).Schedule(context.Background(), store); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(idle.Assignments) != 1 || len(busy.Assignments) != 1 {
		t.Fatalf("idle employee not preferred: idle=%d busy=%d", len(idle.Assignments), len(busy.Assignments))
	}
}

func TestScheduleTieBreaksOnLowestID(t *testing.T) {
	store := model.NewStore()
	for _, id := range []int{4, 2, 7} {
		if err := store.AddEmployee(employee(t, id, "A")); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	p := project(t, 1, 5, interval(t, monday, 9, 4), "A")
	if err := store.AddProject(p); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := newEngine(t).Schedule(context.Background(), store); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(p.AssignedIDs) != 1 || p.AssignedIDs[0] != 2 {
		t.Fatalf("tie not broken on lowest id: %v", p.AssignedIDs)
	}
}

func TestScheduleDeterministic(t *testing.T) {
	build := func() *model.Store {
		store := model.NewStore()
		for i := 1; i <= 4; i++ {
			e, _ := model.NewEmployee(i, "emp", []model.Skill{"A", "B"})
			if err := store.AddEmployee(e); err != nil {
				t.Fatalf("add: %v", err)
			}
		}
		for i := 1; i <= 3; i++ {
			p, _ := model.NewProject(i, "proj", interval(t, monday.AddDate(0, 0, i), 9, 6), []model.Skill{"A", "B"}, 5, 2)
			if err := store.AddProject(p); err != nil {
				t.Fatalf("add: %v", err)
			}
		}
		return store
	}

	s1, s2 := build(), build()
	r1, err := newEngine(t).Schedule(context.Background(), s1)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	r2, err := newEngine(t).Schedule(context.Background(), s2)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	r1.RunID, r2.RunID = "", ""
	if !reflect.DeepEqual(r1, r2) {
		t.Fatalf("results differ:\n%+v\n%+v", r1, r2)
	}
	for i := 1; i <= 4; i++ {
		if !reflect.DeepEqual(s1.Employee(i).Assignments, s2.Employee(i).Assignments) {
			t.Fatalf("assignment sets differ for employee %d", i)
		}
	}
}

func TestScheduleCancellation(t *testing.T) {
	store := model.NewStore()
	if err := store.AddEmployee(employee(t, 1, "A")); err != nil {
		t.Fatalf("add: %v", err)
	}
	for i := 1; i <= 3; i++ {
		p := project(t, i, 5, interval(t, monday.AddDate(0, 0, i), 9, 4), "A")
		if err := store.AddProject(p); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newEngine(t).Schedule(ctx, store)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(res.Unattempted) != 3 {
		t.Fatalf("unattempted = %v, want all 3 projects", res.Unattempted)
	}
	for i := 1; i <= 3; i++ {
		if store.Project(i).Status != model.StatusPending {
			t.Fatalf("unattempted project %d changed status to %s", i, store.Project(i).Status)
		}
	}
}

func TestSplitHoursConservation(t *testing.T) {
	cases := []struct {
		duration, prior           float64
		wantRegular, wantOvertime float64
	}{
		{8, 0, 8, 0},
		{6, 6, 2, 4},
		{4, 10, 0, 4},
		{10, 0, 8, 2},
	}
	for _, c := range cases {
		reg, ot := splitHours(c.duration, c.prior, 8)
		if reg != c.wantRegular || ot != c.wantOvertime {
			t.Fatalf("splitHours(%.0f, %.0f) = %.1f/%.1f, want %.1f/%.1f",
				c.duration, c.prior, reg, ot, c.wantRegular, c.wantOvertime)
		}
		if reg+ot != c.duration {
			t.Fatalf("hour conservation violated for duration %.0f", c.duration)
		}
	}
}
