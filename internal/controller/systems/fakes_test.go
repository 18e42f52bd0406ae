package systems

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"padkeys/internal/controller/components"
	"padkeys/internal/controller/entities"
	"padkeys/internal/logger"
)

type onceCall struct {
	event string
	fn    func(Pad)
}

type fakeGamepad struct {
	calls []onceCall
}

func (g *fakeGamepad) Once(event string, fn func(Pad)) {
	g.calls = append(g.calls, onceCall{event: event, fn: fn})
}

// connect fires every registered listener for event once, then forgets them.
func (g *fakeGamepad) connect(t *testing.T, p Pad) {
	t.Helper()
	calls := g.calls
	g.calls = nil
	fired := 0
	for _, c := range calls {
		if c.event == EventConnected {
			c.fn(p)
			fired++
		}
	}
	if fired == 0 {
		t.Fatalf("no %q listener registered", EventConnected)
	}
}

type fakeInput struct {
	gamepad GamepadPlugin
}

func (i *fakeInput) Gamepad() GamepadPlugin { return i.gamepad }

type fakeHost struct {
	input InputPlugin
}

func (h *fakeHost) Input() InputPlugin { return h.input }

func newFakeHost() (*fakeHost, *fakeGamepad) {
	g := &fakeGamepad{}
	return &fakeHost{input: &fakeInput{gamepad: g}}, g
}

type fakePad struct {
	buttons []Button
	axes    []Axis
}

func (p *fakePad) Buttons() []Button { return p.buttons }
func (p *fakePad) Axes() []Axis      { return p.axes }

// newPad returns a released pad with the standard 17 buttons and 4 axes.
func newPad() *fakePad {
	return &fakePad{
		buttons: make([]Button, 17),
		axes:    []Axis{AxisValue(0), AxisValue(0), AxisValue(0), AxisValue(0)},
	}
}

func (p *fakePad) press(i int) *fakePad {
	p.buttons[i].Value = 1
	return p
}

func (p *fakePad) tilt(i int, v float64) *fakePad {
	p.axes[i] = AxisValue(v)
	return p
}

type fakeKeyboard map[components.VirtualKey]bool

func (k fakeKeyboard) IsPressed(key components.VirtualKey) bool { return k[key] }

// lookupFunc adapts a function to InputLookup.
type lookupFunc func(e ecs.Entity) (*components.Input, bool)

func (f lookupFunc) LookupInput(e ecs.Entity) (*components.Input, bool) { return f(e) }

func newManager(t *testing.T) *entities.EntityManager {
	t.Helper()
	a := app.New(64).Seed(123)
	return entities.NewEntityManager(&a.World)
}

func spawnPlayer(m *entities.EntityManager) ecs.Entity {
	return m.NewPlayer(entities.PlayerSpawn{Name: "player", X: 200, Y: 200, Speed: 400})
}

func observedLogger() (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewFromCore(core), logs
}

func keysOf(t *testing.T, m *entities.EntityManager, e ecs.Entity) components.KeySet {
	t.Helper()
	in, ok := m.LookupInput(e)
	if !ok {
		t.Fatalf("entity %d has no input", e.ID())
	}
	return in.Keys
}

// diffKeys treats nil and empty key lists as equal.
func diffKeys(want, got []components.VirtualKey) string {
	return cmp.Diff(want, got, cmpopts.EquateEmpty())
}
