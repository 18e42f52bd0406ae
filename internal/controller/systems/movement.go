package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"padkeys/internal/controller/components"
	"padkeys/internal/logger"
)

const movementSystemName = "movement"

// MovementSystem turns the held directional keys into a velocity of
// magnitude Speed. Opposite keys cancel; diagonals are normalized.
type MovementSystem struct {
	motion MotionLookup
	log    logger.Logger
}

func NewMovementSystem(motion MotionLookup, log logger.Logger) *MovementSystem {
	return &MovementSystem{motion: motion, log: logger.Component(log, "movement")}
}

func (s *MovementSystem) Name() string { return movementSystemName }

func (s *MovementSystem) Update(entities []ecs.Entity) error {
	for _, e := range entities {
		in, ok := s.motion.LookupInput(e)
		if !ok {
			return s.fail(e, ErrMissingInputComponent)
		}
		_, vel, ok := s.motion.LookupMotion(e)
		if !ok {
			return s.fail(e, ErrMissingMotionComponent)
		}
		dx, dy := Direction(in.Keys)
		vel.X = dx * vel.Speed
		vel.Y = dy * vel.Speed
	}
	return nil
}

func (s *MovementSystem) fail(e ecs.Entity, cause error) error {
	err := entityError(movementSystemName, e, cause)
	s.log.Error("movement update aborted", logger.F("error", err))
	return err
}

// Direction returns the unit direction encoded by keys; (0, 0) when nothing
// or only opposing keys are held. Y grows downwards.
func Direction(keys components.KeySet) (float64, float64) {
	var dx, dy float64
	if keys.Has(components.KeyArrowLeft) {
		dx--
	}
	if keys.Has(components.KeyArrowRight) {
		dx++
	}
	if keys.Has(components.KeyArrowUp) {
		dy--
	}
	if keys.Has(components.KeyArrowDown) {
		dy++
	}
	if dx != 0 && dy != 0 {
		dx /= math.Sqrt2
		dy /= math.Sqrt2
	}
	return dx, dy
}
