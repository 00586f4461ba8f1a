package character

import "github.com/Faultbox/ridgeline/pkg/math"

// Limbs holds cosmetic swing angles in radians. They never feed back into physics.
type Limbs struct {
	Phase    float32
	LeftArm  float32
	RightArm float32
	LeftLeg  float32
	RightLeg float32
}

// SwingRate is the stride phase speed in radians per second.
const SwingRate = 10.0

// MaxSwing is the peak limb angle in radians.
const MaxSwing = 0.6

// Update advances the walk cycle while moving on the ground. Standing still
// returns to the rest pose; in the air the last pose is held.
func (l *Limbs) Update(dt float32, moving, grounded bool) {
	if !grounded {
		return
	}
	if !moving {
		*l = Limbs{}
		return
	}

	l.Phase += dt * SwingRate
	swing := math.Sin(l.Phase) * MaxSwing
	l.LeftLeg = swing
	l.RightLeg = -swing
	l.LeftArm = -swing
	l.RightArm = swing
}
