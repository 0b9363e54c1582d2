package metrics

import (
	"errors"

	coremetrics "github.com/crewplan/crewplan/core/metrics"
)

// MultiSink fans events out to several sinks, joining any errors.
type MultiSink struct {
	sinks []coremetrics.Sink
}

// NewMultiSink combines the given sinks into one.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordScheduleRun forwards the event to every sink.
func (m *MultiSink) RecordScheduleRun(ev coremetrics.ScheduleRunEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordScheduleRun(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordAssignments forwards the events to every sink.
func (m *MultiSink) RecordAssignments(evs []coremetrics.AssignmentEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordAssignments(evs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
