// Package camera provides camera rigs that follow the player and supply the
// horizontal movement basis.
package camera

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/ridgeline/internal/engine/input"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// Rig is a camera that tracks a target.
type Rig interface {
	// HandleMouse applies the frame's mouse motion to the rig's orientation.
	HandleMouse(in input.Snapshot)
	// Update moves the camera for the target's new position.
	Update(target math.Vec3, dt float32)

	Eye() math.Vec3
	LookAt() math.Vec3

	// ForwardDirection returns the unit forward direction on the XZ plane.
	ForwardDirection() (x, z float32)
	// RightDirection returns the unit right direction on the XZ plane.
	RightDirection() (x, z float32)
}

// Mode names a rig.
type Mode string

const (
	ModeFirstPerson Mode = "first_person"
	ModeChase       Mode = "chase"
	ModeOrbit       Mode = "orbit"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeFirstPerson, ModeChase, ModeOrbit:
		return m, nil
	}
	return "", fmt.Errorf("unknown camera mode %q", s)
}

// New creates a rig with default settings.
func New(mode Mode) (Rig, error) {
	switch mode {
	case ModeFirstPerson:
		return NewFirstPerson(), nil
	case ModeChase:
		return NewChase(), nil
	case ModeOrbit:
		return NewOrbit(), nil
	}
	return nil, fmt.Errorf("unknown camera mode %q", mode)
}

// yawBasis returns forward (sin yaw, cos yaw) and right (-cos yaw, sin yaw).
func yawBasis(yaw float32) (fx, fz, rx, rz float32) {
	s, c := math.Sin(yaw), math.Cos(yaw)
	return s, c, -c, s
}

// lerpFactor converts a per-reference-frame blend into one for dt.
func lerpFactor(perFrame, dt float32) float32 {
	if !(dt > 0) {
		return 0
	}
	return 1 - float32(gomath.Pow(float64(1-perFrame), float64(dt*60)))
}

const halfPi = gomath.Pi / 2
