package controller

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"padkeys/internal/controller/components"
	"padkeys/internal/controller/systems"
	"padkeys/internal/logger"
)

type stubGamepad struct {
	listeners []func(systems.Pad)
}

func (g *stubGamepad) Once(event string, fn func(systems.Pad)) {
	if event == systems.EventConnected {
		g.listeners = append(g.listeners, fn)
	}
}

func (g *stubGamepad) connect(p systems.Pad) {
	for _, fn := range g.listeners {
		fn(p)
	}
	g.listeners = nil
}

type stubInput struct{ gamepad *stubGamepad }

func (i stubInput) Gamepad() systems.GamepadPlugin { return i.gamepad }

type stubHost struct{ input stubInput }

func (h stubHost) Input() systems.InputPlugin { return h.input }

type stubPad struct{ buttons []systems.Button }

func (p *stubPad) Buttons() []systems.Button { return p.buttons }
func (p *stubPad) Axes() []systems.Axis      { return nil }

type stubKeyboard map[components.VirtualKey]bool

func (k stubKeyboard) IsPressed(key components.VirtualKey) bool { return k[key] }

func newTestScene(t *testing.T, kb systems.KeyboardState) (*Scene, *stubGamepad) {
	t.Helper()
	gp := &stubGamepad{}
	s, err := NewScene(DefaultConfig(), stubHost{input: stubInput{gamepad: gp}}, kb, nil)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	t.Cleanup(s.Close)
	return s, gp
}

func TestNewSceneRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorldSize = 0
	if _, err := NewScene(cfg, nil, nil, nil); err == nil {
		t.Error("expected error for zero world size")
	}
	cfg = DefaultConfig()
	cfg.Step = 0
	if _, err := NewScene(cfg, nil, nil, nil); err == nil {
		t.Error("expected error for zero step")
	}
}

func TestSceneWithoutHost(t *testing.T) {
	s, err := NewScene(DefaultConfig(), nil, nil, nil)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	defer s.Close()
	if s.Gamepad().Connection().Subscribed() {
		t.Error("expected no gamepad subscription without a host")
	}
	for i := 0; i < 3; i++ {
		if err := s.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	pos, _, _ := s.Entities().LookupMotion(s.Player())
	if pos.X != 200 || pos.Y != 200 {
		t.Errorf("idle player moved to (%v, %v)", pos.X, pos.Y)
	}
}

func TestSceneGamepadMovesPlayer(t *testing.T) {
	s, gp := newTestScene(t, nil)
	pad := &stubPad{buttons: make([]systems.Button, 17)}
	pad.buttons[systems.ButtonDpadRight].Value = 1
	gp.connect(pad)

	// Frame 1 translates the pad; frame 2 turns the keys into velocity.
	for i := 0; i < 2; i++ {
		if err := s.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	in, _ := s.Entities().LookupInput(s.Player())
	if diff := cmp.Diff([]string{"ArrowRight"}, in.Keys.Strings()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	pos, vel, _ := s.Entities().LookupMotion(s.Player())
	if vel.X != 400 {
		t.Errorf("velocity X = %v, want 400", vel.X)
	}
	if pos.X <= 200 {
		t.Errorf("player did not move right: x = %v", pos.X)
	}
}

func TestSceneGamepadOverridesKeyboard(t *testing.T) {
	s, gp := newTestScene(t, stubKeyboard{components.KeyArrowUp: true})
	gp.connect(&stubPad{buttons: make([]systems.Button, 17)})

	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	in, _ := s.Entities().LookupInput(s.Player())
	if in.Keys.Len() != 0 {
		t.Errorf("gamepad step should replace keyboard keys, got %v", in.Keys.Strings())
	}
}

func TestSceneUpdateStopsOnContractViolation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gp := &stubGamepad{}
	s, err := NewScene(DefaultConfig(), stubHost{input: stubInput{gamepad: gp}}, nil, logger.NewFromCore(core))
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	defer s.Close()
	gp.connect(&stubPad{buttons: make([]systems.Button, 17)})

	// A player that lost its input component.
	s.Entities().Input.Remove(s.Player())

	err = s.Update()
	if !errors.Is(err, systems.ErrMissingInputComponent) {
		t.Fatalf("expected ErrMissingInputComponent, got %v", err)
	}
	var ee *systems.EntityError
	if !errors.As(err, &ee) || ee.System != "movement" {
		t.Fatalf("expected movement to fail first, got %v", err)
	}
	if n := logs.FilterMessage("system skipped").Len(); n != 3 {
		t.Errorf("expected 3 skipped systems, got %d", n)
	}
	if m, ok := s.Metrics().Step("gamepad"); !ok || m.Skipped != 1 || m.Updates != 0 {
		t.Errorf("gamepad metrics = %+v", m)
	}
}

func TestSceneClose(t *testing.T) {
	s, err := NewScene(DefaultConfig(), nil, nil, nil)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	s.Close()
	s.Close()
	if err := s.Update(); !errors.Is(err, ErrSceneClosed) {
		t.Errorf("expected ErrSceneClosed, got %v", err)
	}
}

func TestPlayerView(t *testing.T) {
	s, gp := newTestScene(t, nil)
	pad := &stubPad{buttons: make([]systems.Button, 17)}
	pad.buttons[systems.ButtonDpadDown].Value = 1
	gp.connect(pad)
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	view := s.PlayerView()
	if !view.IsAlive() || view.Name() != "player" {
		t.Fatalf("unexpected view: alive=%v name=%q", view.IsAlive(), view.Name())
	}
	x, y, ok := view.Position()
	if !ok || x != 200 || y != 200 {
		t.Errorf("Position = (%v, %v, %v)", x, y, ok)
	}
	if diff := cmp.Diff([]components.VirtualKey{components.KeyArrowDown}, view.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}
