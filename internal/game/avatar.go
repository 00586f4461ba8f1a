package game

import (
	"github.com/Faultbox/ridgeline/internal/engine/character"
	"github.com/Faultbox/ridgeline/internal/engine/scene"
	"github.com/Faultbox/ridgeline/internal/game/scenery"
	"github.com/Faultbox/ridgeline/pkg/math"
)

// Avatar part anchors relative to the controller position, facing +Z.
var (
	headOffset     = math.Vec3{Y: 1.25}
	leftArmOffset  = math.Vec3{X: 0.65, Y: 0.85}
	rightArmOffset = math.Vec3{X: -0.65, Y: 0.85}
	leftLegOffset  = math.Vec3{X: 0.25, Y: -0.3}
	rightLegOffset = math.Vec3{X: -0.25, Y: -0.3}
)

// AvatarInstances poses the player body at the controller.
func AvatarInstances(c *character.Controller) []scene.Instance {
	yaw := c.Facing
	at := func(offset math.Vec3) math.Vec3 {
		return c.Position.Add(rotateY(offset, yaw))
	}
	return []scene.Instance{
		{Mesh: scenery.MeshAvatarBody, Position: c.Position, Yaw: yaw},
		{Mesh: scenery.MeshAvatarHead, Position: at(headOffset), Yaw: yaw},
		{Mesh: scenery.MeshAvatarArm, Position: at(leftArmOffset), Yaw: yaw, Pitch: c.Limbs.LeftArm},
		{Mesh: scenery.MeshAvatarArm, Position: at(rightArmOffset), Yaw: yaw, Pitch: c.Limbs.RightArm},
		{Mesh: scenery.MeshAvatarLeg, Position: at(leftLegOffset), Yaw: yaw, Pitch: c.Limbs.LeftLeg},
		{Mesh: scenery.MeshAvatarLeg, Position: at(rightLegOffset), Yaw: yaw, Pitch: c.Limbs.RightLeg},
	}
}

// rotateY matches the instance model rotation.
func rotateY(v math.Vec3, yaw float32) math.Vec3 {
	s, c := math.Sin(yaw), math.Cos(yaw)
	return math.Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}
