package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"padkeys/internal/logger"
)

const physicsSystemName = "physics"

// Bounds is the axis-aligned rectangle entities are kept inside.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Square returns bounds from the origin to (size, size).
func Square(size float64) Bounds {
	return Bounds{MaxX: size, MaxY: size}
}

// PhysicsSystem integrates velocity over a fixed step and clamps positions to
// the world bounds. Velocity on a blocked axis is zeroed.
type PhysicsSystem struct {
	motion MotionLookup
	bounds Bounds
	dt     float64
	log    logger.Logger
}

func NewPhysicsSystem(motion MotionLookup, bounds Bounds, step time.Duration, log logger.Logger) *PhysicsSystem {
	return &PhysicsSystem{
		motion: motion,
		bounds: bounds,
		dt:     step.Seconds(),
		log:    logger.Component(log, "physics"),
	}
}

func (s *PhysicsSystem) Name() string { return physicsSystemName }

func (s *PhysicsSystem) Update(entities []ecs.Entity) error {
	for _, e := range entities {
		pos, vel, ok := s.motion.LookupMotion(e)
		if !ok {
			err := entityError(physicsSystemName, e, ErrMissingMotionComponent)
			s.log.Error("physics update aborted", logger.F("error", err))
			return err
		}
		pos.X, vel.X = clampAxis(pos.X+vel.X*s.dt, vel.X, s.bounds.MinX, s.bounds.MaxX)
		pos.Y, vel.Y = clampAxis(pos.Y+vel.Y*s.dt, vel.Y, s.bounds.MinY, s.bounds.MaxY)
	}
	return nil
}

func clampAxis(p, v, lo, hi float64) (float64, float64) {
	switch {
	case p < lo:
		return lo, 0
	case p > hi:
		return hi, 0
	}
	return p, v
}
