package systems

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"
)

// Contract violations. They are returned from Update and are not meant to be
// recovered: the frame driver stops the run when it sees one.
var (
	ErrMissingInputComponent  = errors.New("missing input component")
	ErrMissingMotionComponent = errors.New("missing motion component")
	ErrMissingGamepad         = errors.New("missing gamepad")
)

// EntityError reports which system rejected which entity.
type EntityError struct {
	System string
	Entity ecs.Entity
	Err    error
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("%s system: entity %d: %v", e.System, e.Entity.ID(), e.Err)
}

func (e *EntityError) Unwrap() error {
	return e.Err
}

func entityError(system string, entity ecs.Entity, err error) *EntityError {
	return &EntityError{System: system, Entity: entity, Err: err}
}
