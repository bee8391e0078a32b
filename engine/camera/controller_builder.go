package camera

// ControllerBuilderOption is a function that configures a controller instance during construction.
type ControllerBuilderOption func(*controllerImpl)

// WithSpeed sets the movement speed in world units per update.
//
// Parameters:
//   - speed: the movement speed
//
// Returns:
//   - ControllerBuilderOption: a function that sets the controller's speed
func WithSpeed(speed float32) ControllerBuilderOption {
	return func(ctrl *controllerImpl) {
		ctrl.speed = speed
	}
}
