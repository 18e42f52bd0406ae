package systems

import (
	"time"

	"github.com/google/uuid"

	"padkeys/internal/logger"
)

// ConnectionState is the lifecycle of a ConnectionManager.
type ConnectionState int

const (
	Unconnected ConnectionState = iota
	Connected
)

func (s ConnectionState) String() string {
	if s == Connected {
		return "connected"
	}
	return "unconnected"
}

// PadCell holds the pad reference. The connection manager writes it once;
// the gamepad step reads it every frame and must Load again before each use,
// because the host may Invalidate it in between.
type PadCell struct {
	pad         Pad
	session     uuid.UUID
	connectedAt time.Time
}

// Load returns the current pad, or nil.
func (c *PadCell) Load() Pad {
	return c.pad
}

// Store sets the pad and starts a new connection session.
func (c *PadCell) Store(p Pad) uuid.UUID {
	c.pad = p
	c.session = uuid.New()
	c.connectedAt = time.Now()
	return c.session
}

// Invalidate drops the pad, e.g. when the host sees it disconnect.
func (c *PadCell) Invalidate() {
	c.pad = nil
}

// Session identifies the connection that produced the current pad.
func (c *PadCell) Session() uuid.UUID {
	return c.session
}

// ConnectedAt is when the current pad was stored.
func (c *PadCell) ConnectedAt() time.Time {
	return c.connectedAt
}

// ConnectionManager acquires a reference to the first gamepad that connects.
type ConnectionManager struct {
	cell       PadCell
	state      ConnectionState
	subscribed bool
	log        logger.Logger
}

// NewConnectionManager subscribes once to the host's "connected" notification.
// A nil host, input subsystem or gamepad facility leaves the manager
// unconnected without subscribing.
func NewConnectionManager(host Host, log logger.Logger) *ConnectionManager {
	m := &ConnectionManager{log: logger.Component(log, "gamepad.connection")}
	if host == nil {
		m.log.Debug("no host context, gamepad disabled")
		return m
	}
	input := host.Input()
	if input == nil {
		m.log.Debug("host has no input subsystem, gamepad disabled")
		return m
	}
	gamepad := input.Gamepad()
	if gamepad == nil {
		m.log.Debug("input subsystem has no gamepad facility, gamepad disabled")
		return m
	}
	m.subscribed = true
	gamepad.Once(EventConnected, m.onConnected)
	return m
}

func (m *ConnectionManager) onConnected(p Pad) {
	if p == nil {
		m.log.Warn("connected event without a pad")
		return
	}
	if m.state == Connected {
		m.log.Warn("ignoring second gamepad connection", logger.F("session", m.cell.Session().String()))
		return
	}
	session := m.cell.Store(p)
	m.state = Connected
	m.log.Info("gamepad connected",
		logger.F("session", session.String()),
		logger.F("buttons", len(p.Buttons())),
		logger.F("axes", len(p.Axes())),
	)
}

// State reports whether a pad has ever been received.
func (m *ConnectionManager) State() ConnectionState {
	return m.state
}

// Subscribed reports whether construction found a gamepad facility.
func (m *ConnectionManager) Subscribed() bool {
	return m.subscribed
}

// Pad exposes the shared pad cell.
func (m *ConnectionManager) Pad() *PadCell {
	return &m.cell
}
