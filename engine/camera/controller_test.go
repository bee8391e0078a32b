package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/eyengine/eyengine-go/common"
	"github.com/stretchr/testify/assert"
)

const controllerTol = 1e-5

func newTestCamera() Camera {
	return NewCamera(WithEye(0, 0, 2), WithTarget(0, 0, 0), WithUp(0, 1, 0))
}

func TestControllerProcessKey(t *testing.T) {
	ctrl := NewController()

	assert.True(t, ctrl.ProcessKey(common.KeyW, true))
	assert.True(t, ctrl.ProcessKey(common.KeyUp, true))
	assert.True(t, ctrl.ProcessKey(common.KeyS, false))
	assert.True(t, ctrl.ProcessKey(common.KeyDown, true))
	assert.True(t, ctrl.ProcessKey(common.KeyA, true))
	assert.True(t, ctrl.ProcessKey(common.KeyLeft, true))
	assert.True(t, ctrl.ProcessKey(common.KeyD, true))
	assert.True(t, ctrl.ProcessKey(common.KeyRight, true))
	assert.True(t, ctrl.ProcessKey(common.KeyJ, true))
	assert.True(t, ctrl.ProcessKey(common.KeyK, true))

	assert.False(t, ctrl.ProcessKey(common.KeySpace, true))
	assert.False(t, ctrl.ProcessKey(common.KeyEsc, true))
}

func TestControllerForwardMovesBySpeed(t *testing.T) {
	ctrl := NewController(WithSpeed(0.2))
	c := newTestCamera()
	c.SetController(ctrl)

	ctrl.ProcessKey(common.KeyW, true)
	ctrl.UpdateCamera(c)

	x, y, z := c.Eye()
	assert.InDelta(t, 0.0, x, controllerTol)
	assert.InDelta(t, 0.0, y, controllerTol)
	assert.InDelta(t, 1.8, z, controllerTol)
}

func TestControllerForwardStopsAtTarget(t *testing.T) {
	ctrl := NewController(WithSpeed(0.2))
	c := NewCamera(WithEye(0, 0, 0.1), WithTarget(0, 0, 0))
	c.SetController(ctrl)

	// Distance to target (0.1) is within one step, so forward holds position.
	ctrl.ProcessKey(common.KeyW, true)
	ctrl.UpdateCamera(c)

	x, y, z := c.Eye()
	assert.InDelta(t, 0.0, x, controllerTol)
	assert.InDelta(t, 0.0, y, controllerTol)
	assert.InDelta(t, 0.1, z, controllerTol)
}

func TestControllerBackwardIsUnguarded(t *testing.T) {
	ctrl := NewController(WithSpeed(0.2))
	c := NewCamera(WithEye(0, 0, 0.1), WithTarget(0, 0, 0))
	c.SetController(ctrl)

	ctrl.ProcessKey(common.KeyS, true)
	ctrl.UpdateCamera(c)

	_, _, z := c.Eye()
	assert.InDelta(t, 0.3, z, controllerTol)
}

func TestControllerStrafePreservesDistance(t *testing.T) {
	ctrl := NewController(WithSpeed(0.2))
	c := newTestCamera()
	c.SetController(ctrl)

	ctrl.ProcessKey(common.KeyD, true)
	ctrl.UpdateCamera(c)

	x, y, z := c.Eye()
	dist := math32.Sqrt(x*x + y*y + z*z)
	assert.InDelta(t, 2.0, dist, controllerTol)
	assert.NotEqual(t, float32(0), x)
}

func TestControllerVerticalMovement(t *testing.T) {
	ctrl := NewController(WithSpeed(0.2))
	c := newTestCamera()
	c.SetController(ctrl)

	ctrl.ProcessKey(common.KeyK, true)
	ctrl.UpdateCamera(c)
	_, y, _ := c.Eye()
	assert.InDelta(t, 0.2, y, controllerTol)

	ctrl.ProcessKey(common.KeyK, false)
	ctrl.ProcessKey(common.KeyJ, true)
	ctrl.UpdateCamera(c)
	_, y, _ = c.Eye()
	assert.InDelta(t, 0.0, y, controllerTol)
}

func TestControllerReleaseStopsMovement(t *testing.T) {
	ctrl := NewController(WithSpeed(0.2))
	c := newTestCamera()
	c.SetController(ctrl)

	ctrl.ProcessKey(common.KeyW, true)
	ctrl.ProcessKey(common.KeyW, false)
	ctrl.UpdateCamera(c)

	_, _, z := c.Eye()
	assert.InDelta(t, 2.0, z, controllerTol)
}

func TestCameraUpdateDrivesController(t *testing.T) {
	ctrl := NewController(WithSpeed(0.5))
	c := newTestCamera()
	c.SetController(ctrl)

	ctrl.ProcessKey(common.KeyW, true)
	c.Update()

	_, _, z := c.Eye()
	assert.InDelta(t, 1.5, z, controllerTol)
}
