// Package character provides the player's kinematic controller: horizontal
// movement relative to a camera basis, gravity, jumping and ground clamping.
package character

import (
	"fmt"

	"github.com/Faultbox/ridgeline/pkg/math"
)

// TerrainQuery provides ground height for collision.
type TerrainQuery interface {
	// Elevation returns the terrain height at the given world position.
	Elevation(worldX, worldZ float32) float32
}

// Orientation supplies the horizontal movement basis, usually a camera.
type Orientation interface {
	// ForwardDirection returns the unit forward direction on the XZ plane.
	ForwardDirection() (x, z float32)
	// RightDirection returns the unit right direction on the XZ plane.
	RightDirection() (x, z float32)
}

// FixedYaw is an Orientation that never turns. Yaw 0 faces +Z; Pi faces -Z.
type FixedYaw float32

// ForwardDirection returns (sin yaw, cos yaw).
func (y FixedYaw) ForwardDirection() (x, z float32) {
	return math.Sin(float32(y)), math.Cos(float32(y))
}

// RightDirection returns forward × up projected on XZ.
func (y FixedYaw) RightDirection() (x, z float32) {
	return -math.Cos(float32(y)), math.Sin(float32(y))
}

// HorizontalMode selects how horizontal velocity responds to released keys.
type HorizontalMode string

const (
	// HorizontalSnap sets horizontal velocity straight to the target, zero when idle.
	HorizontalSnap HorizontalMode = "snap"
	// HorizontalDecay keeps snapping while keys are held but decays toward zero when idle.
	HorizontalDecay HorizontalMode = "decay"
)

// ParseHorizontalMode validates a mode name from configuration.
func ParseHorizontalMode(s string) (HorizontalMode, error) {
	switch m := HorizontalMode(s); m {
	case HorizontalSnap, HorizontalDecay:
		return m, nil
	}
	return "", fmt.Errorf("unknown horizontal mode %q", s)
}

// MotionState is the controller's logical state.
type MotionState int

const (
	Grounded MotionState = iota
	Airborne
)

func (s MotionState) String() string {
	if s == Grounded {
		return "grounded"
	}
	return "airborne"
}

// Params tunes the controller.
type Params struct {
	Speed     float32 // Horizontal speed, units per second
	JumpSpeed float32 // Vertical launch speed
	Gravity   float32 // Vertical acceleration, negative is down
	Clearance float32 // Height of the origin above the ground when standing

	Horizontal  HorizontalMode
	DecayFactor float32 // Idle velocity multiplier per reference frame (decay mode)

	MaxStep float32 // Longest dt integrated in one update; 0 disables the clamp

	Obstacles []Obstacle
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		Speed:       DefaultSpeed,
		JumpSpeed:   DefaultJumpSpeed,
		Gravity:     DefaultGravity,
		Clearance:   DefaultClearance,
		Horizontal:  HorizontalSnap,
		DecayFactor: DefaultDecayFactor,
		MaxStep:     DefaultMaxStep,
	}
}

// Step reports what happened during one Update.
type Step struct {
	Dt          float32 // Integrated time after clamping
	Jumped      bool    // Left the ground this frame
	LaunchSpeed float32 // Vertical velocity set by the jump, before gravity
	Landed      bool    // Touched down after being airborne
	Ground      float32 // Clamp surface (elevation + clearance) under the final position
}

const (
	DefaultSpeed       = 10.0
	DefaultJumpSpeed   = 15.0
	DefaultGravity     = -30.0
	DefaultClearance   = 1.0
	DefaultDecayFactor = 0.9

	// DefaultMaxStep bounds a single integration step after a stalled frame.
	DefaultMaxStep = 0.1

	// ReferenceStep is the frame length DecayFactor is expressed against.
	ReferenceStep = 1.0 / 60.0
)
