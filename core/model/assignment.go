package model

// Assignment binds an employee to a project for the project's exact interval.
// The regular/overtime split is fixed when the scheduling engine records the
// assignment and never revised afterwards.
type Assignment struct {
	EmployeeID    int      `json:"employee_id"`
	ProjectID     int      `json:"project_id"`
	Interval      Interval `json:"interval"`
	RegularHours  float64  `json:"regular_hours"`
	OvertimeHours float64  `json:"overtime_hours"`
}
