package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionRun
	ActionJump
	ActionCount // Must be last - used for array sizing
)

// GamepadButton is a device-independent name for a standard layout button
type GamepadButton int

const (
	ButtonSouth GamepadButton = iota // A / Cross
	ButtonEast                       // B / Circle
	ButtonWest                       // X / Square
	ButtonNorth                      // Y / Triangle
	ButtonStart
)

// GamepadAxis is a device-independent name for a standard layout axis
type GamepadAxis int

const (
	AxisLeftX GamepadAxis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
)

// InputConfig holds the default per-controller mapping
type InputConfig struct {
	JumpButton GamepadButton
	RunAxis    GamepadAxis
	// Symmetric dead zone applied to the run axis (0.0 to 1.0)
	RunDeadzone float64
	// Controller id used by the keyboard pseudo-controller
	KeyboardControllerID int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		JumpButton:           ButtonSouth,
		RunAxis:              AxisLeftX,
		RunDeadzone:          0.1,
		KeyboardControllerID: 99,
	}
}
