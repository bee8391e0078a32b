package camera

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/eyengine/eyengine-go/common"
)

// controllerImpl is the implementation of the Controller interface.
type controllerImpl struct {
	mu *sync.Mutex

	speed float32

	forwardPressed  bool
	backwardPressed bool
	leftPressed     bool
	rightPressed    bool
	upPressed       bool
	downPressed     bool
}

// Controller translates held movement keys into camera eye updates.
// Key events toggle direction flags via ProcessKey; UpdateCamera applies the
// held directions to the camera once per frame. All movement is relative to
// the camera's current view of its target.
type Controller interface {
	// Speed returns the movement speed in world units per update.
	//
	// Returns:
	//   - float32: the movement speed
	Speed() float32

	// ProcessKey updates the held-direction state for a key event and reports
	// whether the key is a movement key this controller handles.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//   - pressed: true for a key press, false for a release
	//
	// Returns:
	//   - bool: true if the key maps to a movement direction
	ProcessKey(keyCode uint32, pressed bool) bool

	// UpdateCamera applies the currently held movement directions to the
	// camera's eye position. Forward movement stops before overshooting the
	// target; all other directions are unclamped. Should be called once per
	// frame.
	//
	// Parameters:
	//   - c: the camera to move
	UpdateCamera(c Camera)
}

var _ Controller = &controllerImpl{}

// NewController creates a new Controller with the specified options applied.
// The default movement speed is 0.2 world units per update.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerBuilderOption) Controller {
	ctrl := &controllerImpl{
		mu:    &sync.Mutex{},
		speed: 0.2,
	}
	for _, option := range options {
		option(ctrl)
	}
	return ctrl
}

func (ctrl *controllerImpl) Speed() float32 {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return ctrl.speed
}

func (ctrl *controllerImpl) ProcessKey(keyCode uint32, pressed bool) bool {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	switch keyCode {
	case common.KeyW, common.KeyUp:
		ctrl.forwardPressed = pressed
	case common.KeyS, common.KeyDown:
		ctrl.backwardPressed = pressed
	case common.KeyA, common.KeyLeft:
		ctrl.leftPressed = pressed
	case common.KeyD, common.KeyRight:
		ctrl.rightPressed = pressed
	case common.KeyK:
		ctrl.upPressed = pressed
	case common.KeyJ:
		ctrl.downPressed = pressed
	default:
		return false
	}
	return true
}

func (ctrl *controllerImpl) UpdateCamera(c Camera) {
	ctrl.mu.Lock()
	speed := ctrl.speed
	forwardPressed := ctrl.forwardPressed
	backwardPressed := ctrl.backwardPressed
	leftPressed := ctrl.leftPressed
	rightPressed := ctrl.rightPressed
	upPressed := ctrl.upPressed
	downPressed := ctrl.downPressed
	ctrl.mu.Unlock()

	ex, ey, ez := c.Eye()
	tx, ty, tz := c.Target()
	ux, uy, uz := c.Up()

	eye := [3]float32{ex, ey, ez}
	target := [3]float32{tx, ty, tz}
	up := [3]float32{ux, uy, uz}

	forward := sub3(target, eye)
	mag := length3(forward)

	// Forward stops before crossing the target to keep the view direction
	// stable; backward has no such limit.
	if forwardPressed && mag > speed {
		eye = add3(eye, scale3(normalize3(forward), speed))
	}
	if backwardPressed {
		eye = sub3(eye, scale3(normalize3(forward), speed))
	}

	// Recompute after forward/backward so strafing orbits at the new distance.
	forward = sub3(target, eye)
	mag = length3(forward)
	forwardNorm := normalize3(forward)

	left := cross3(forwardNorm, up)
	right := scale3(left, -1)

	// Strafing re-derives the eye from the target so the distance to the
	// target is preserved while the view direction rotates.
	if rightPressed {
		eye = sub3(target, scale3(normalize3(add3(forward, scale3(right, speed))), mag))
	}
	if leftPressed {
		eye = sub3(target, scale3(normalize3(add3(forward, scale3(left, speed))), mag))
	}

	if upPressed {
		eye = add3(eye, scale3(up, speed))
	}
	if downPressed {
		eye = sub3(eye, scale3(up, speed))
	}

	c.SetEye(eye[0], eye[1], eye[2])
}

func add3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scale3(v [3]float32, s float32) [3]float32 {
	return [3]float32{v[0] * s, v[1] * s, v[2] * s}
}

func length3(v [3]float32) float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func normalize3(v [3]float32) [3]float32 {
	l := length3(v)
	if l == 0 {
		return v
	}
	return scale3(v, 1/l)
}

func cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
