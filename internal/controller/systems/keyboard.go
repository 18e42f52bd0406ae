package systems

import (
	"github.com/mlange-42/ark/ecs"

	"padkeys/internal/controller/components"
	"padkeys/internal/logger"
)

const keyboardSystemName = "keyboard"

// KeyboardSystem mirrors the held arrow keys into each entity's key set: held
// keys are added, released ones removed. Other keys in the set are left alone.
type KeyboardSystem struct {
	keyboard KeyboardState
	inputs   InputLookup
	states   *StateLogger
	log      logger.Logger
}

// NewKeyboardSystem returns a keyboard step. A nil keyboard makes Update a no-op.
func NewKeyboardSystem(keyboard KeyboardState, inputs InputLookup, log logger.Logger) *KeyboardSystem {
	log = logger.Component(log, "keyboard")
	return &KeyboardSystem{
		keyboard: keyboard,
		inputs:   inputs,
		states:   NewStateLogger(log),
		log:      log,
	}
}

func (s *KeyboardSystem) Name() string { return keyboardSystemName }

func (s *KeyboardSystem) Update(entities []ecs.Entity) error {
	if s.keyboard == nil {
		return nil
	}
	inputs := make([]*components.Input, 0, len(entities))
	before := make([][]string, 0, len(entities))
	for _, e := range entities {
		in, ok := s.inputs.LookupInput(e)
		if !ok {
			err := entityError(keyboardSystemName, e, ErrMissingInputComponent)
			s.log.Error("keyboard update aborted", logger.F("error", err))
			return err
		}
		inputs = append(inputs, in)
		before = append(before, in.Keys.Strings())
	}

	for _, key := range components.ArrowKeys {
		held := s.keyboard.IsPressed(key)
		for _, in := range inputs {
			if held {
				in.Keys.Add(key)
			} else {
				in.Keys.Delete(key)
			}
		}
	}
	for i, in := range inputs {
		s.states.LogTransition(entities[i], before[i], in.Keys.Strings())
	}
	return nil
}
