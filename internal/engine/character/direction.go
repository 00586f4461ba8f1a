package character

import (
	gomath "math"

	"github.com/Faultbox/ridgeline/pkg/math"
)

// TurnRate is how fast the avatar turns toward its travel direction, radians per second.
const TurnRate = 12.0

// turnToward rotates facing toward dir by at most TurnRate*dt along the shorter
// arc. A zero dir keeps the current facing.
func turnToward(facing float32, dir math.Vec2, dt float32) float32 {
	if dir.IsZero() {
		return facing
	}
	diff := WrapAngle(dir.Heading() - facing)

	maxTurn := TurnRate * dt
	if diff > maxTurn {
		diff = maxTurn
	} else if diff < -maxTurn {
		diff = -maxTurn
	}
	return WrapAngle(facing + diff)
}

// WrapAngle normalises an angle to [-π, π).
func WrapAngle(a float32) float32 {
	for a >= gomath.Pi {
		a -= 2 * gomath.Pi
	}
	for a < -gomath.Pi {
		a += 2 * gomath.Pi
	}
	return a
}
