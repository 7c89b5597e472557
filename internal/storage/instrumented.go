package storage

import (
	"errors"
	"time"

	"resume-storage/internal/resumes"
	"resume-storage/internal/shared/metrics"
	"resume-storage/internal/shared/telemetry"
)

// Instrumented wraps a Storage, counting every operation and logging failures.
type Instrumented struct {
	next    Storage
	metrics *metrics.Metrics
	now     func() time.Time
}

// Instrument wraps next. A nil m disables metrics but keeps logging.
func Instrument(next Storage, m *metrics.Metrics) *Instrumented {
	m.SetSize(next.Size())
	return &Instrumented{next: next, metrics: m, now: time.Now}
}

func (s *Instrumented) Clear() {
	start := s.now()
	s.next.Clear()
	s.observe("clear", "", start, nil)
}

func (s *Instrumented) Save(r resumes.Resume) error {
	start := s.now()
	err := s.next.Save(r)
	s.observe("save", r.UUID, start, err)
	return err
}

func (s *Instrumented) Update(r resumes.Resume) error {
	start := s.now()
	err := s.next.Update(r)
	s.observe("update", r.UUID, start, err)
	return err
}

func (s *Instrumented) Get(uuid string) (resumes.Resume, error) {
	start := s.now()
	r, err := s.next.Get(uuid)
	s.observe("get", uuid, start, err)
	return r, err
}

func (s *Instrumented) Delete(uuid string) error {
	start := s.now()
	err := s.next.Delete(uuid)
	s.observe("delete", uuid, start, err)
	return err
}

func (s *Instrumented) GetAll() []resumes.Resume {
	start := s.now()
	all := s.next.GetAll()
	s.observe("get_all", "", start, nil)
	return all
}

func (s *Instrumented) Size() int {
	return s.next.Size()
}

func (s *Instrumented) observe(op, uuid string, start time.Time, err error) {
	outcome := Outcome(err)
	s.metrics.ObserveOp(op, outcome, s.now().Sub(start))
	s.metrics.SetSize(s.next.Size())
	if err == nil {
		return
	}
	fields := map[string]any{
		"op":      op,
		"outcome": outcome,
		"error":   err.Error(),
	}
	if uuid != "" {
		fields["uuid"] = uuid
	}
	if outcome == metrics.OutcomeOverflow {
		fields["size"] = s.next.Size()
		telemetry.Error("storage.error", fields)
		return
	}
	telemetry.Warn("storage.error", fields)
}

// Outcome classifies an operation result for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrExist):
		return metrics.OutcomeExists
	case errors.Is(err, ErrNotExist):
		return metrics.OutcomeNotExists
	case errors.Is(err, ErrOverflow):
		return metrics.OutcomeOverflow
	default:
		return metrics.OutcomeError
	}
}

var _ Storage = (*Instrumented)(nil)
