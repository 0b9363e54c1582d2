package metrics

import "time"

// ScheduleRunEvent summarises one completed scheduling pass.
type ScheduleRunEvent struct {
	RunID              string
	Scheduled          int
	PartiallyStaffed   int
	Failed             int
	Unattempted        int
	Assignments        int
	TotalRegularHours  float64
	TotalOvertimeHours float64
	Duration           time.Duration
	Time               time.Time
}

// AssignmentEvent records a single employee-to-project assignment.
type AssignmentEvent struct {
	RunID         string
	EmployeeID    int
	ProjectID     int
	RegularHours  float64
	OvertimeHours float64
	Time          time.Time
}

// Sink records scheduling events for observability purposes.
type Sink interface {
	RecordScheduleRun(ev ScheduleRunEvent) error
	RecordAssignments(evs []AssignmentEvent) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordScheduleRun(ScheduleRunEvent) error  { return nil }
func (NopSink) RecordAssignments([]AssignmentEvent) error { return nil }
