package character

import (
	gomath "math"

	"github.com/Faultbox/ridgeline/internal/engine/input"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// Controller owns the player's position and velocity.
type Controller struct {
	Position math.Vec3
	Velocity math.Vec3
	Grounded bool

	// Facing is the avatar yaw, turning toward the direction of travel.
	Facing float32
	Limbs  Limbs

	Params  Params
	terrain TerrainQuery
}

// NewController places a controller at spawn with zero velocity. It starts
// airborne and settles on the first updates.
func NewController(terrain TerrainQuery, params Params, spawn math.Vec3) *Controller {
	return &Controller{
		Position: spawn,
		Params:   params,
		terrain:  terrain,
	}
}

// State returns Grounded or Airborne.
func (c *Controller) State() MotionState {
	if c.Grounded {
		return Grounded
	}
	return Airborne
}

// Respawn moves the controller to p and clears its motion.
func (c *Controller) Respawn(p math.Vec3) {
	c.Position = p
	c.Velocity = math.Vec3{}
	c.Grounded = false
	c.Limbs = Limbs{}
}

// Ground returns the clamp surface under (x, z).
func (c *Controller) Ground(x, z float32) float32 {
	var h float32
	if c.terrain != nil {
		h = c.terrain.Elevation(x, z)
	}
	return h + c.Params.Clearance
}

// Update advances the controller by dt seconds.
//
// Order per frame: horizontal velocity from input, jump, gravity, explicit
// Euler integration, obstacle push-out, ground clamp, cosmetic animation.
// A non-positive or NaN dt is ignored; dt above MaxStep is clamped.
func (c *Controller) Update(dt float32, in input.Snapshot, orient Orientation) Step {
	if !(dt > 0) {
		return Step{Ground: c.Ground(c.Position.X, c.Position.Z)}
	}
	if c.Params.MaxStep > 0 && dt > c.Params.MaxStep {
		dt = c.Params.MaxStep
	}
	step := Step{Dt: dt}

	dir := c.moveDirection(in, orient)
	c.applyHorizontal(dir, dt)

	if c.Grounded && in.Jump {
		c.Velocity.Y = c.Params.JumpSpeed
		c.Grounded = false
		step.Jumped = true
		step.LaunchSpeed = c.Velocity.Y
	}

	// Gravity applies in every state so a grounded body re-clamps each frame.
	c.Velocity.Y += c.Params.Gravity * dt
	c.Position = c.Position.Add(c.Velocity.Scale(dt))

	for _, o := range c.Params.Obstacles {
		c.Position = o.Resolve(c.Position)
	}

	step.Ground = c.Ground(c.Position.X, c.Position.Z)
	if c.Position.Y <= step.Ground {
		c.Position.Y = step.Ground
		c.Velocity.Y = 0
		step.Landed = !c.Grounded
		c.Grounded = true
	}

	moving := !dir.IsZero()
	c.Facing = turnToward(c.Facing, dir, dt)
	c.Limbs.Update(dt, moving, c.Grounded)
	return step
}

// moveDirection maps the input axes onto the orientation's basis, normalised
// so diagonals are no faster than a single axis.
func (c *Controller) moveDirection(in input.Snapshot, orient Orientation) math.Vec2 {
	ax, az := in.Axes()
	if ax == 0 && az == 0 {
		return math.Vec2{}
	}
	if orient == nil {
		orient = FixedYaw(0)
	}
	fx, fz := orient.ForwardDirection()
	rx, rz := orient.RightDirection()
	return math.Vec2{
		X: fx*az + rx*ax,
		Y: fz*az + rz*ax,
	}.Normalize()
}

func (c *Controller) applyHorizontal(dir math.Vec2, dt float32) {
	if dir.IsZero() && c.Params.Horizontal == HorizontalDecay {
		// Frame-rate independent form of v *= factor per 1/60 s.
		f := float32(gomath.Pow(float64(c.Params.DecayFactor), float64(dt/ReferenceStep)))
		c.Velocity.X *= f
		c.Velocity.Z *= f
		return
	}
	c.Velocity.X = dir.X * c.Params.Speed
	c.Velocity.Z = dir.Y * c.Params.Speed
}

// HorizontalSpeed is the magnitude of the XZ velocity.
func (c *Controller) HorizontalSpeed() float32 {
	return c.Velocity.HorizontalLength()
}
