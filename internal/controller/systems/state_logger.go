package systems

import (
	"slices"
	"strings"

	"github.com/mlange-42/ark/ecs"

	"padkeys/internal/logger"
)

// StateLogger records key set transitions at debug level, one entry per
// change. Frames where the set stays the same are not logged.
type StateLogger struct {
	log logger.Logger
}

func NewStateLogger(log logger.Logger) *StateLogger {
	if log == nil {
		log = logger.Nop()
	}
	return &StateLogger{log: log}
}

// LogTransition logs before -> after for entity when they differ. Both
// slices must be sorted.
func (l *StateLogger) LogTransition(entity ecs.Entity, before, after []string) {
	if slices.Equal(before, after) {
		return
	}
	l.log.Debug("keys changed",
		logger.F("entity", entity.ID()),
		logger.F("old_keys", formatKeys(before)),
		logger.F("new_keys", formatKeys(after)),
	)
}

func formatKeys(keys []string) string {
	if len(keys) == 0 {
		return "Idle"
	}
	return strings.Join(keys, "+")
}
