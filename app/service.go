package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/crewplan/crewplan/config"
	"github.com/crewplan/crewplan/core/capacity"
	coremetrics "github.com/crewplan/crewplan/core/metrics"
	"github.com/crewplan/crewplan/core/model"
	"github.com/crewplan/crewplan/core/report"
	"github.com/crewplan/crewplan/core/schedule"
	"github.com/crewplan/crewplan/infra/logger"
	"github.com/crewplan/crewplan/infra/metrics"
	"github.com/crewplan/crewplan/internal/dataset"
)

// PlanOutput is the document written after a planning run.
type PlanOutput struct {
	Result     schedule.Result          `json:"scheduling_result"`
	Validation model.ScheduleValidation `json:"validation"`
	Report     report.CapacityReport    `json:"capacity_report"`
}

// Service orchestrates one planning run: load, schedule, analyze, report.
type Service struct {
	cfg  *config.Config
	log  logger.Logger
	sink coremetrics.Sink
}

// New creates a Service from the configuration, assembling metrics sinks.
func New(cfg *config.Config) (*Service, error) {
	logger.SetGlobalLevel(cfg.Logging.Level)
	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink
	switch len(sinks) {
	case 0:
		sink = coremetrics.NopSink{}
	case 1:
		sink = sinks[0]
	default:
		sink = metrics.NewMultiSink(sinks...)
	}
	return &Service{cfg: cfg, log: logger.New("service"), sink: sink}, nil
}

// Plan runs the full pipeline against the dataset at datasetPath and returns
// the combined output. A cancelled context stops the scheduling pass between
// projects; the partial result is still analyzed and returned.
func (s *Service) Plan(ctx context.Context, datasetPath string) (*PlanOutput, error) {
	store, err := dataset.Load(datasetPath, s.cfg.Scheduler.SkillsPerProject)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	engine, err := schedule.NewEngine(s.cfg.Scheduler, logger.New("engine"))
	if err != nil {
		return nil, err
	}
	start := time.Now()
	res, err := engine.Schedule(ctx, store)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	if err != nil {
		s.log.Warnf("run %s cancelled with %d projects unattempted", res.RunID, len(res.Unattempted))
	}
	s.recordMetrics(store, res, time.Since(start))

	analyzer, err := capacity.NewAnalyzer(store, s.cfg.Analyzer)
	if err != nil {
		return nil, err
	}
	return &PlanOutput{
		Result:     res,
		Validation: store.ValidateSchedule(),
		Report:     report.Assemble(analyzer),
	}, nil
}

// Write marshals the output as indented JSON to path, or stdout when path is
// empty.
func (s *Service) Write(out *PlanOutput, path string) error {
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if path == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ServeMetrics exposes the Prometheus endpoint until the context is
// cancelled. It is a no-op when Prometheus is disabled.
func (s *Service) ServeMetrics(ctx context.Context) error {
	if !s.cfg.Metrics.PrometheusEnabled {
		return nil
	}
	return metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort)
}

func (s *Service) recordMetrics(store *model.Store, res schedule.Result, elapsed time.Duration) {
	now := time.Now()
	var events []coremetrics.AssignmentEvent
	for _, e := range store.Employees() {
		for _, a := range e.Assignments {
			events = append(events, coremetrics.AssignmentEvent{
				RunID:         res.RunID,
				EmployeeID:    a.EmployeeID,
				ProjectID:     a.ProjectID,
				RegularHours:  a.RegularHours,
				OvertimeHours: a.OvertimeHours,
				Time:          now,
			})
		}
	}
	if err := s.sink.RecordAssignments(events); err != nil {
		s.log.Errorf("record assignments: %v", err)
	}
	ev := coremetrics.ScheduleRunEvent{
		RunID:              res.RunID,
		Scheduled:          res.ScheduledCount,
		PartiallyStaffed:   len(res.PartiallyStaffed),
		Failed:             len(res.Failed),
		Unattempted:        len(res.Unattempted),
		Assignments:        len(events),
		TotalRegularHours:  res.Stats.TotalRegularHours,
		TotalOvertimeHours: res.Stats.TotalOvertimeHours,
		Duration:           elapsed,
		Time:               now,
	}
	if err := s.sink.RecordScheduleRun(ev); err != nil {
		s.log.Errorf("record run: %v", err)
	}
}
