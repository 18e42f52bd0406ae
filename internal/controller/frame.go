package controller

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/mlange-42/ark/ecs"

	"padkeys/internal/controller/systems"
	"padkeys/internal/logger"
)

// frame is the state shared by the step adapters during one Scene.Update.
type frame struct {
	entities []ecs.Entity
	err      error
	failed   string
}

func (f *frame) reset(entities []ecs.Entity) {
	f.entities = entities
	f.err = nil
	f.failed = ""
}

// PanicError is returned when a step panics. The frame is stopped like for
// any other step error.
type PanicError struct {
	Step  string
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s system panicked: %v", e.Step, e.Value)
}

// stepSystem runs a systems.Step inside the ark-tools scheduler, which has
// no error channel of its own. Once a step fails the rest of the frame is
// skipped.
type stepSystem struct {
	step    systems.Step
	frame   *frame
	metrics *MetricsAggregator
	log     logger.Logger
}

func (s *stepSystem) Initialize(w *ecs.World) {
	s.metrics.register(s.step.Name())
	s.log.Debug("system registered", logger.F("system", s.step.Name()))
}

func (s *stepSystem) Update(w *ecs.World) {
	name := s.step.Name()
	if s.frame.err != nil {
		s.metrics.recordSkip(name)
		s.log.Debug("system skipped", logger.F("system", name), logger.F("failed", s.frame.failed))
		return
	}
	start := time.Now()
	err := s.safeUpdate()
	s.metrics.recordUpdate(name, time.Since(start), len(s.frame.entities), err != nil)
	if err != nil {
		s.frame.err = err
		s.frame.failed = name
	}
}

func (s *stepSystem) Finalize(w *ecs.World) {
	if m, ok := s.metrics.Step(s.step.Name()); ok {
		s.log.Debug("system finalized",
			logger.F("system", m.Step),
			logger.F("updates", m.Updates),
			logger.F("failures", m.Failures),
			logger.F("avg", m.AvgUpdateDuration()),
			logger.F("max", m.MaxUpdateDuration),
		)
	}
}

// safeUpdate turns a panic in the step into a *PanicError.
func (s *stepSystem) safeUpdate() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Step: s.step.Name(), Value: r}
			s.log.Error("system panicked",
				logger.F("system", s.step.Name()),
				logger.F("panic", fmt.Sprint(r)),
				logger.F("stack", string(debug.Stack())),
			)
		}
	}()
	return s.step.Update(s.frame.entities)
}
