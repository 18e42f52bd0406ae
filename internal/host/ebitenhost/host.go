// Package ebitenhost adapts ebiten's input state to the host context the
// scene systems expect.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"padkeys/internal/controller/systems"
	"padkeys/internal/event"
	"padkeys/internal/logger"
)

// Options selects which input facilities the host exposes.
type Options struct {
	Gamepad  bool
	Keyboard bool
}

// Host implements systems.Host on top of ebiten. Poll must be called once per
// frame, before the scene update, from ebiten's Update goroutine.
type Host struct {
	opts   Options
	events *event.Once[systems.Pad]
	pads   map[ebiten.GamepadID]*Pad
	idBuf  []ebiten.GamepadID
	log    logger.Logger
}

func New(opts Options, log logger.Logger) *Host {
	return &Host{
		opts:   opts,
		events: event.NewOnce[systems.Pad](),
		pads:   make(map[ebiten.GamepadID]*Pad),
		log:    logger.Component(log, "ebitenhost"),
	}
}

// Input returns nil when neither facility is enabled.
func (h *Host) Input() systems.InputPlugin {
	if !h.opts.Gamepad && !h.opts.Keyboard {
		return nil
	}
	return inputPlugin{h: h}
}

// Keyboard returns the keyboard state, or nil when the keyboard is disabled.
func (h *Host) Keyboard() systems.KeyboardState {
	if !h.opts.Keyboard {
		return nil
	}
	return Keyboard{}
}

// Poll emits "connected" for each gamepad ebiten reports as newly connected
// and returns the IDs of gamepads that went away since the last frame.
func (h *Host) Poll() []ebiten.GamepadID {
	if !h.opts.Gamepad {
		return nil
	}
	h.idBuf = inpututil.AppendJustConnectedGamepadIDs(h.idBuf[:0])
	for _, id := range h.idBuf {
		pad := newPad(id)
		h.pads[id] = pad
		h.log.Info("gamepad detected",
			logger.F("id", int(id)),
			logger.F("name", ebiten.GamepadName(id)),
			logger.F("sdl_id", ebiten.GamepadSDLID(id)),
			logger.F("standard_layout", ebiten.IsStandardGamepadLayoutAvailable(id)),
		)
		if n := h.events.Emit(systems.EventConnected, pad); n == 0 {
			h.log.Debug("no listener for gamepad", logger.F("id", int(id)))
		}
	}

	var gone []ebiten.GamepadID
	for id, pad := range h.pads {
		if inpututil.IsGamepadJustDisconnected(id) {
			pad.disconnect()
			delete(h.pads, id)
			gone = append(gone, id)
			h.log.Info("gamepad disconnected", logger.F("id", int(id)))
		}
	}
	return gone
}

type inputPlugin struct {
	h *Host
}

func (p inputPlugin) Gamepad() systems.GamepadPlugin {
	if !p.h.opts.Gamepad {
		return nil
	}
	return gamepadPlugin{events: p.h.events}
}

type gamepadPlugin struct {
	events *event.Once[systems.Pad]
}

func (g gamepadPlugin) Once(name string, fn func(systems.Pad)) {
	g.events.Once(name, fn)
}
