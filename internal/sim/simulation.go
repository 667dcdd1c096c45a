package sim

import (
	"io"

	"github.com/charmbracelet/log"
)

// Config configures a Simulation.
type Config struct {
	Area      PlayArea
	Dt        float64 // fixed timestep in seconds
	HitMargin float64 // pointer hit shrink margin
	Logger    *log.Logger
}

// Simulation owns a World and runs the per-tick passes in fixed order:
// Integrate, then the boundary pass. Proximity tests run afterwards from the
// demo's own tick using the same World.
type Simulation struct {
	World *World

	area      PlayArea
	dt        float64
	hitMargin float64
	logger    *log.Logger
	warned    map[BodyID]bool
	ticks     int
}

// NewSimulation creates a simulation with an empty world. A zero Dt falls
// back to 1/60 s and a nil Logger discards output.
func NewSimulation(cfg Config) *Simulation {
	if cfg.Dt <= 0 {
		cfg.Dt = 1.0 / 60.0
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Simulation{
		World:     NewWorld(),
		area:      cfg.Area,
		dt:        cfg.Dt,
		hitMargin: cfg.HitMargin,
		logger:    cfg.Logger,
		warned:    make(map[BodyID]bool),
	}
}

// Area returns the play area.
func (s *Simulation) Area() PlayArea {
	return s.area
}

// Dt returns the fixed timestep.
func (s *Simulation) Dt() float64 {
	return s.dt
}

// HitMargin returns the pointer hit margin.
func (s *Simulation) HitMargin() float64 {
	return s.hitMargin
}

// Ticks returns the number of completed steps.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Spawn adds a body to the world.
func (s *Simulation) Spawn(spec Spec) BodyID {
	id := s.World.Spawn(spec)
	if spec.Policy != PolicyNone {
		b, _ := s.World.Get(id)
		s.checkSize(b)
	}
	return id
}

// Step advances one fixed tick and returns the boundary events it produced.
// Despawned bodies are compacted out before returning.
func (s *Simulation) Step() []Event {
	Integrate(s.World, s.dt)
	events := ApplyBoundaries(s.World, s.area)
	for _, ev := range events {
		if ev.Type == EventDespawn {
			delete(s.warned, ev.A)
		}
	}
	s.World.Compact()
	s.ticks++
	return events
}

// Reset clears all bodies and the tick counter.
func (s *Simulation) Reset() {
	s.World.Clear()
	clear(s.warned)
	s.ticks = 0
}

// checkSize logs, once per body, a body that can never be inside the area.
func (s *Simulation) checkSize(b *Body) {
	if s.warned[b.ID] || !Oversized(b, s.area) {
		return
	}
	s.warned[b.ID] = true
	s.logger.Warn("body larger than play area",
		"id", b.ID,
		"kind", b.Kind,
		"half_x", b.half.X,
		"half_y", b.half.Y,
		"policy", b.Policy,
	)
}
