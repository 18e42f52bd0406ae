// Package controller owns the ECS world of the demo scene and drives its
// systems once per frame.
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"

	"padkeys/internal/controller/entities"
	"padkeys/internal/controller/systems"
	"padkeys/internal/logger"
)

// Config describes the scene. Step is the fixed simulation step used by
// physics; the host frame loop is expected to tick at the matching rate.
type Config struct {
	WorldSize float64
	Player    entities.PlayerSpawn
	Step      time.Duration
}

// DefaultConfig matches the classic 400x400 demo at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		WorldSize: 400,
		Player:    entities.PlayerSpawn{Name: "player", X: 200, Y: 200, Speed: 400},
		Step:      time.Second / 60,
	}
}

// Scene wires one player entity to the keyboard, gamepad, movement and
// physics systems.
type Scene struct {
	app    *app.App
	world  *ecs.World
	mapper *entities.EntityManager
	player ecs.Entity

	movement *systems.MovementSystem
	keyboard *systems.KeyboardSystem
	gamepad  *systems.GamepadSystem
	physics  *systems.PhysicsSystem

	frame   *frame
	metrics *MetricsAggregator
	ticks   uint64
	closed  bool
	log     logger.Logger
}

// NewScene builds the world and registers the systems in their run order.
// host and keyboard may be nil; the matching system then does nothing.
func NewScene(cfg Config, host systems.Host, keyboard systems.KeyboardState, log logger.Logger) (*Scene, error) {
	if cfg.WorldSize <= 0 {
		return nil, fmt.Errorf("world size must be positive, got %v", cfg.WorldSize)
	}
	if cfg.Step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %v", cfg.Step)
	}
	log = logger.Component(log, "scene")

	arkApp := app.New(64).Seed(123)
	world := &arkApp.World
	mapper := entities.NewEntityManager(world)

	s := &Scene{
		app:      arkApp,
		world:    world,
		mapper:   mapper,
		player:   mapper.NewPlayer(cfg.Player),
		movement: systems.NewMovementSystem(mapper, log),
		keyboard: systems.NewKeyboardSystem(keyboard, mapper, log),
		gamepad:  systems.NewGamepadSystem(host, mapper, log),
		physics:  systems.NewPhysicsSystem(mapper, systems.Square(cfg.WorldSize), cfg.Step, log),
		frame:    &frame{},
		metrics:  NewMetricsAggregator(),
		log:      log,
	}

	// Movement reads last frame's keys, so a key pressed this frame moves
	// the player on the next one.
	for _, step := range []systems.Step{s.movement, s.keyboard, s.gamepad, s.physics} {
		arkApp.AddSystem(&stepSystem{step: step, frame: s.frame, metrics: s.metrics, log: log})
	}
	arkApp.Initialize()

	log.Info("scene ready",
		logger.F("player", mapper.NameOf(s.player)),
		logger.F("world_size", cfg.WorldSize),
		logger.F("gamepad_subscribed", s.gamepad.Connection().Subscribed()),
	)
	return s, nil
}

// Update runs one frame over every player entity. The first failing system
// stops the frame; its error is returned and the remaining systems are skipped.
func (s *Scene) Update() error {
	if s.closed {
		return ErrSceneClosed
	}
	s.ticks++
	s.frame.reset(s.mapper.Players())
	s.app.Update()
	if err := s.frame.err; err != nil {
		return fmt.Errorf("frame %d: %w", s.ticks, err)
	}
	return nil
}

// Close finalizes the systems. Further calls to Update fail.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.app.Finalize()
	s.log.Info("scene closed", logger.F("frames", s.ticks))
}

// ErrSceneClosed is returned by Update after Close.
var ErrSceneClosed = errors.New("scene closed")

func (s *Scene) Player() ecs.Entity                { return s.player }
func (s *Scene) Entities() *entities.EntityManager { return s.mapper }
func (s *Scene) Gamepad() *systems.GamepadSystem   { return s.gamepad }
func (s *Scene) Frames() uint64                    { return s.ticks }
func (s *Scene) Metrics() *MetricsAggregator       { return s.metrics }
