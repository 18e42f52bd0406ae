package controller

import (
	"github.com/mlange-42/ark/ecs"

	"padkeys/internal/controller/components"
	"padkeys/internal/controller/entities"
)

// PlayerAdapter is a read-only view of one player entity for rendering and
// diagnostics. It hides the component lookups.
type PlayerAdapter struct {
	entity  ecs.Entity
	mappers *entities.EntityManager
}

// PlayerView returns the adapter for the scene's player.
func (s *Scene) PlayerView() PlayerAdapter {
	return PlayerAdapter{entity: s.player, mappers: s.mapper}
}

func (p PlayerAdapter) IsAlive() bool {
	return p.mappers.World.Alive(p.entity)
}

func (p PlayerAdapter) Name() string {
	return p.mappers.NameOf(p.entity)
}

// Position reports false when the entity lost its motion components.
func (p PlayerAdapter) Position() (x, y float64, ok bool) {
	pos, _, ok := p.mappers.LookupMotion(p.entity)
	if !ok {
		return 0, 0, false
	}
	return pos.X, pos.Y, true
}

// Keys returns the active virtual keys in lexical order.
func (p PlayerAdapter) Keys() []components.VirtualKey {
	in, ok := p.mappers.LookupInput(p.entity)
	if !ok {
		return nil
	}
	return in.Keys.Sorted()
}
