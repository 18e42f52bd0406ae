package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"padkeys/internal/controller/systems"
)

// Pad reads one ebiten gamepad. Buttons and Axes sample the device on every
// call. Gamepads with an SDL mapping are reported in the standard layout;
// others fall back to raw indices, where buttons are either 0 or 1.
type Pad struct {
	id      ebiten.GamepadID
	gone    bool
	buttons []systems.Button
	axes    []systems.Axis
}

func newPad(id ebiten.GamepadID) *Pad {
	return &Pad{id: id}
}

func (p *Pad) ID() ebiten.GamepadID { return p.id }

func (p *Pad) disconnect() { p.gone = true }

// Buttons returns nil once the pad is disconnected.
func (p *Pad) Buttons() []systems.Button {
	if p.gone {
		return nil
	}
	p.buttons = p.buttons[:0]
	if ebiten.IsStandardGamepadLayoutAvailable(p.id) {
		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			p.buttons = append(p.buttons, systems.Button{Value: ebiten.StandardGamepadButtonValue(p.id, b)})
		}
		return p.buttons
	}
	for b := 0; b < ebiten.GamepadButtonCount(p.id); b++ {
		var v float64
		if ebiten.IsGamepadButtonPressed(p.id, ebiten.GamepadButton(b)) {
			v = 1
		}
		p.buttons = append(p.buttons, systems.Button{Value: v})
	}
	return p.buttons
}

// Axes returns nil once the pad is disconnected.
func (p *Pad) Axes() []systems.Axis {
	if p.gone {
		return nil
	}
	p.axes = p.axes[:0]
	if ebiten.IsStandardGamepadLayoutAvailable(p.id) {
		for a := ebiten.StandardGamepadAxis(0); a <= ebiten.StandardGamepadAxisMax; a++ {
			p.axes = append(p.axes, systems.AxisValue(ebiten.StandardGamepadAxisValue(p.id, a)))
		}
		return p.axes
	}
	for a := 0; a < ebiten.GamepadAxisCount(p.id); a++ {
		p.axes = append(p.axes, systems.AxisValue(ebiten.GamepadAxisValue(p.id, ebiten.GamepadAxisType(a))))
	}
	return p.axes
}
