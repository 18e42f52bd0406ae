package controller

import (
	"sync"
	"time"
)

// StepMetrics holds per-step timing for the frames run so far.
type StepMetrics struct {
	Step              string
	Updates           int64
	Skipped           int64
	Failures          int64
	EntitiesProcessed int64
	TotalDuration     time.Duration
	MaxUpdateDuration time.Duration
	MinUpdateDuration time.Duration
	LastUpdate        time.Time
}

// AvgUpdateDuration is zero before the first update.
func (m StepMetrics) AvgUpdateDuration() time.Duration {
	if m.Updates == 0 {
		return 0
	}
	return m.TotalDuration / time.Duration(m.Updates)
}

// MetricsAggregator collects StepMetrics by step name. Reads may happen from
// another goroutine than the frame loop.
type MetricsAggregator struct {
	mu    sync.RWMutex
	order []string
	steps map[string]*StepMetrics
}

func NewMetricsAggregator() *MetricsAggregator {
	return &MetricsAggregator{steps: make(map[string]*StepMetrics)}
}

func (ma *MetricsAggregator) register(name string) {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	if _, ok := ma.steps[name]; ok {
		return
	}
	ma.order = append(ma.order, name)
	ma.steps[name] = &StepMetrics{Step: name}
}

func (ma *MetricsAggregator) recordUpdate(name string, d time.Duration, entities int, failed bool) {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	m, ok := ma.steps[name]
	if !ok {
		return
	}
	m.Updates++
	m.EntitiesProcessed += int64(entities)
	m.TotalDuration += d
	m.LastUpdate = time.Now()
	if failed {
		m.Failures++
	}
	if d > m.MaxUpdateDuration {
		m.MaxUpdateDuration = d
	}
	if m.Updates == 1 || d < m.MinUpdateDuration {
		m.MinUpdateDuration = d
	}
}

func (ma *MetricsAggregator) recordSkip(name string) {
	ma.mu.Lock()
	defer ma.mu.Unlock()
	if m, ok := ma.steps[name]; ok {
		m.Skipped++
	}
}

// Step returns a copy of the metrics for name.
func (ma *MetricsAggregator) Step(name string) (StepMetrics, bool) {
	ma.mu.RLock()
	defer ma.mu.RUnlock()
	m, ok := ma.steps[name]
	if !ok {
		return StepMetrics{}, false
	}
	return *m, true
}

// All returns copies in registration order.
func (ma *MetricsAggregator) All() []StepMetrics {
	ma.mu.RLock()
	defer ma.mu.RUnlock()
	out := make([]StepMetrics, 0, len(ma.order))
	for _, name := range ma.order {
		out = append(out, *ma.steps[name])
	}
	return out
}
