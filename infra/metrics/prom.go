package metrics

import (
	coremetrics "github.com/crewplan/crewplan/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records scheduling events in Prometheus metrics.
type PromSink struct {
	projects    *prometheus.CounterVec
	assignments prometheus.Counter
	duration    prometheus.Histogram
	overtime    prometheus.Gauge
}

// NewPromSink registers scheduling metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	projects := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_projects_total",
		Help: "Projects processed per scheduling run, by outcome",
	}, []string{"outcome"})
	assignments := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schedule_assignments_total",
		Help: "Total number of assignments recorded",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_run_duration_seconds",
		Help:    "Wall time of a scheduling pass",
		Buckets: prometheus.DefBuckets,
	})
	overtime := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_overtime_hours",
		Help: "Total overtime hours in the latest run",
	})

	if err := reg.Register(projects); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			projects = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(assignments); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			assignments = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(overtime); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			overtime = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{projects: projects, assignments: assignments, duration: duration, overtime: overtime}, nil
}

// RecordScheduleRun updates the per-outcome counters, the run duration
// histogram and the overtime gauge.
func (s *PromSink) RecordScheduleRun(ev coremetrics.ScheduleRunEvent) error {
	s.projects.WithLabelValues("scheduled").Add(float64(ev.Scheduled))
	s.projects.WithLabelValues("partially_staffed").Add(float64(ev.PartiallyStaffed))
	s.projects.WithLabelValues("failed").Add(float64(ev.Failed))
	s.projects.WithLabelValues("unattempted").Add(float64(ev.Unattempted))
	s.duration.Observe(ev.Duration.Seconds())
	s.overtime.Set(ev.TotalOvertimeHours)
	return nil
}

// RecordAssignments increments the assignment counter.
func (s *PromSink) RecordAssignments(evs []coremetrics.AssignmentEvent) error {
	s.assignments.Add(float64(len(evs)))
	return nil
}
