package game

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/ridgeline/internal/engine/character"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// KMHPerUnit converts units per second into the km/h readout.
const KMHPerUnit = 3.6

// PositionText formats a position as "x, y, z" rounded half up.
func PositionText(p math.Vec3) string {
	return fmt.Sprintf("%d, %d, %d",
		math.RoundHalfUp(float64(p.X)),
		math.RoundHalfUp(float64(p.Y)),
		math.RoundHalfUp(float64(p.Z)))
}

// Speed returns the rounded horizontal speed readout.
func Speed(v math.Vec3) int {
	return math.RoundHalfUp(float64(v.HorizontalLength()) * KMHPerUnit)
}

// Score is the climb score for a height: ten points per unit above standing
// height at sea level.
func Score(y, clearance float32) int {
	return int(gomath.Floor(float64(max(0, y-clearance)) * 10))
}

// Health drains while the player stands below sea level.
const (
	MaxHealth   = 100
	HealthDrain = 60 // Points per second, one per 1/60 s frame
)

// Stats accumulates per-run counters. The zero value is a fresh run at full health.
type Stats struct {
	Score    int
	Best     int
	Elapsed  float64 // Simulated seconds
	Jumps    int
	Landings int
	Damage   float64
}

// Health is the remaining health, never below zero.
func (s *Stats) Health() int {
	return int(gomath.Ceil(max(0, MaxHealth-s.Damage)))
}

// GameOver reports whether health has run out.
func (s *Stats) GameOver() bool {
	return s.Damage >= MaxHealth
}

// Revive restores full health for a new attempt. Best survives.
func (s *Stats) Revive() {
	s.Damage = 0
}

// Record folds one controller step into the stats. Nothing changes once the
// game is over.
func (s *Stats) Record(step character.Step, pos math.Vec3, clearance float32) {
	if s.GameOver() {
		return
	}
	s.Elapsed += float64(step.Dt)
	if step.Jumped {
		s.Jumps++
	}
	if step.Landed {
		s.Landings++
	}
	s.Score = Score(pos.Y, clearance)
	s.Best = max(s.Best, s.Score)
	if pos.Y < 0 {
		s.Damage = min(MaxHealth, s.Damage+float64(step.Dt)*HealthDrain)
	}
}

// HUD is the text overlay for one frame.
type HUD struct {
	Position string
	Speed    int
	Score    int
	Best     int
	Health   int
	GameOver bool
	Camera   string
}

// Title renders the HUD as a single line for the window title.
func (h HUD) Title(app string) string {
	title := fmt.Sprintf("%s | %s | %d km/h | score %d (best %d) | health %d | %s",
		app, h.Position, h.Speed, h.Score, h.Best, h.Health, h.Camera)
	if h.GameOver {
		title += " | GAME OVER, press R"
	}
	return title
}
