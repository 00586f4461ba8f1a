package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotResolvesBindings(t *testing.T) {
	s := NewState(nil)
	s.SetKey(KeyZ, true) // AZERTY forward
	s.SetKey(KeyArrowRight, true)
	s.SetKey(KeySpace, true)

	snap := s.Snapshot()
	assert.True(t, snap.Forward)
	assert.True(t, snap.Right)
	assert.True(t, snap.Jump)
	assert.False(t, snap.Back)
	assert.False(t, snap.Left)

	x, z := snap.Axes()
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(1), z)
	assert.True(t, snap.Moving())
}

func TestOpposingKeysCancel(t *testing.T) {
	s := NewState(nil)
	s.SetKey(KeyA, true)
	s.SetKey(KeyD, true)

	snap := s.Snapshot()
	x, z := snap.Axes()
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), z)
	assert.False(t, snap.Moving())
}

func TestKeyRelease(t *testing.T) {
	s := NewState(nil)
	s.SetKey(KeyW, true)
	s.SetKey(KeyW, true)
	assert.True(t, s.Snapshot().Forward)

	s.SetKey(KeyW, false)
	assert.False(t, s.Snapshot().Forward)
	assert.False(t, s.Pressed(KeyW))
}

func TestSnapshotConsumesMouseMotion(t *testing.T) {
	s := NewState(nil)
	s.SetCaptured(true)
	s.AddMouseMotion(3, -2)
	s.AddMouseMotion(4, 1)
	s.SetMousePosition(0.5, -0.25)
	s.AddWheel(1)

	snap := s.Snapshot()
	assert.Equal(t, float32(7), snap.MouseDX)
	assert.Equal(t, float32(-1), snap.MouseDY)
	assert.Equal(t, float32(0.5), snap.MouseX)
	assert.Equal(t, float32(-0.25), snap.MouseY)
	assert.Equal(t, float32(1), snap.Wheel)
	assert.True(t, snap.Captured)

	next := s.Snapshot()
	assert.Zero(t, next.Wheel)
	assert.Zero(t, next.MouseDX)
	assert.Zero(t, next.MouseDY)
	assert.Equal(t, float32(0.5), next.MouseX, "absolute position persists")

	x, y := s.MousePosition()
	assert.Equal(t, float32(0.5), x)
	assert.Equal(t, float32(-0.25), y)
}

func TestReleaseAll(t *testing.T) {
	s := NewState(nil)
	s.SetKey(KeyW, true)
	s.SetKey(KeySpace, true)
	s.ReleaseAll()

	snap := s.Snapshot()
	assert.False(t, snap.Forward)
	assert.False(t, snap.Jump)
}

func TestCustomBindings(t *testing.T) {
	s := NewState(Bindings{ActionJump: {KeyW}})
	s.SetKey(KeyW, true)

	snap := s.Snapshot()
	assert.True(t, snap.Jump)
	assert.False(t, snap.Forward)
}
