package controller

import (
	"errors"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"padkeys/internal/logger"
)

type funcStep struct {
	name string
	fn   func([]ecs.Entity) error
}

func (s funcStep) Name() string                       { return s.name }
func (s funcStep) Update(entities []ecs.Entity) error { return s.fn(entities) }

func TestStepSystemRecoversPanic(t *testing.T) {
	f := &frame{}
	metrics := NewMetricsAggregator()
	s := &stepSystem{
		step:    funcStep{name: "boom", fn: func([]ecs.Entity) error { panic("bad pad") }},
		frame:   f,
		metrics: metrics,
		log:     logger.Nop(),
	}
	s.Initialize(nil)
	s.Update(nil)

	var pe *PanicError
	if !errors.As(f.err, &pe) || pe.Step != "boom" {
		t.Fatalf("expected PanicError from boom, got %v", f.err)
	}
	m, _ := metrics.Step("boom")
	if m.Updates != 1 || m.Failures != 1 {
		t.Errorf("metrics = %+v", m)
	}
}

func TestStepSystemSkipsAfterFailure(t *testing.T) {
	f := &frame{}
	metrics := NewMetricsAggregator()
	errStop := errors.New("stop")
	ran := 0
	first := &stepSystem{
		step:    funcStep{name: "first", fn: func([]ecs.Entity) error { return errStop }},
		frame:   f,
		metrics: metrics,
		log:     logger.Nop(),
	}
	second := &stepSystem{
		step:    funcStep{name: "second", fn: func([]ecs.Entity) error { ran++; return nil }},
		frame:   f,
		metrics: metrics,
		log:     logger.Nop(),
	}
	first.Initialize(nil)
	second.Initialize(nil)

	first.Update(nil)
	second.Update(nil)
	if ran != 0 {
		t.Fatal("second step ran after a failure")
	}
	if !errors.Is(f.err, errStop) || f.failed != "first" {
		t.Fatalf("frame = %+v", f)
	}

	f.reset(nil)
	first.step = funcStep{name: "first", fn: func([]ecs.Entity) error { return nil }}
	first.Update(nil)
	second.Update(nil)
	if ran != 1 {
		t.Fatalf("second step ran %d times after reset, want 1", ran)
	}

	all := metrics.All()
	if len(all) != 2 || all[0].Step != "first" || all[1].Step != "second" {
		t.Fatalf("unexpected metrics order: %+v", all)
	}
	if all[1].Skipped != 1 || all[1].Updates != 1 {
		t.Errorf("second metrics = %+v", all[1])
	}
	if all[0].Failures != 1 || all[0].Updates != 2 {
		t.Errorf("first metrics = %+v", all[0])
	}
}

func TestStepMetricsAverage(t *testing.T) {
	var m StepMetrics
	if m.AvgUpdateDuration() != 0 {
		t.Error("expected zero average without updates")
	}
}
