package entities

import (
	"padkeys/internal/controller/components"

	"github.com/mlange-42/ark/ecs"
)

// EntityManager bundles the typed component maps of a world. Systems fetch
// components through it instead of by name, so a missing component is an
// (nil, false) result rather than a failed string lookup.
type EntityManager struct {
	World    *ecs.World
	Name     *ecs.Map[components.Name]
	Player   *ecs.Map[components.Player]
	Input    *ecs.Map[components.Input]
	Position *ecs.Map[components.Position]
	Velocity *ecs.Map[components.Velocity]

	players *ecs.Filter1[components.Player]
}

// PlayerSpawn describes the locally controlled entity created by the scene.
type PlayerSpawn struct {
	Name  string
	X, Y  float64
	Speed float64
}

// NewEntityManager creates the maps for world. It does not create entities.
func NewEntityManager(world *ecs.World) *EntityManager {
	return &EntityManager{
		World:    world,
		Name:     ecs.NewMap[components.Name](world),
		Player:   ecs.NewMap[components.Player](world),
		Input:    ecs.NewMap[components.Input](world),
		Position: ecs.NewMap[components.Position](world),
		Velocity: ecs.NewMap[components.Velocity](world),
		players:  ecs.NewFilter1[components.Player](world),
	}
}

// NewPlayer creates a player entity with input, position and velocity.
func (m *EntityManager) NewPlayer(spawn PlayerSpawn) ecs.Entity {
	e := m.World.NewEntity()
	name := components.Name(spawn.Name)
	m.Name.Add(e, &name)
	m.Player.Add(e, &components.Player{})
	m.Input.Add(e, components.NewInput())
	m.Position.Add(e, &components.Position{X: spawn.X, Y: spawn.Y})
	m.Velocity.Add(e, &components.Velocity{Speed: spawn.Speed})
	return e
}

// Players returns the entities tagged as players, in query order.
func (m *EntityManager) Players() []ecs.Entity {
	out := make([]ecs.Entity, 0, 1)
	query := m.players.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// LookupInput returns the input component of e. Dead entities report false.
func (m *EntityManager) LookupInput(e ecs.Entity) (*components.Input, bool) {
	if !m.World.Alive(e) || !m.Input.Has(e) {
		return nil, false
	}
	in := m.Input.Get(e)
	if in.Keys == nil {
		in.Keys = components.NewKeySet()
	}
	return in, true
}

// LookupMotion returns the position and velocity of e; ok is false unless both exist.
func (m *EntityManager) LookupMotion(e ecs.Entity) (*components.Position, *components.Velocity, bool) {
	if !m.World.Alive(e) || !m.Position.Has(e) || !m.Velocity.Has(e) {
		return nil, nil, false
	}
	return m.Position.Get(e), m.Velocity.Get(e), true
}

// NameOf returns the entity name, or "" when it has none.
func (m *EntityManager) NameOf(e ecs.Entity) string {
	if !m.World.Alive(e) || !m.Name.Has(e) {
		return ""
	}
	return string(*m.Name.Get(e))
}
