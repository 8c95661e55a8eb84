package components

import (
	cfg "github.com/automoto/starcatch/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputMap binds the logical actions to one controller instance
type InputMap struct {
	ControllerID int
	Keyboard     bool // keyboard pseudo-controller instead of a gamepad
	Jump         cfg.GamepadButton
	Run          cfg.GamepadAxis
	RunDeadzone  float64
}

// PlayerInputData stores per-player input state.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type PlayerInputData struct {
	Map      InputMap
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	RunValue float64               // run axis after the dead zone, -1 to 1
}

// Push records a new frame of button state, keeping the last one for edge
// detection.
func (p *PlayerInputData) Push(current [cfg.ActionCount]bool, run float64) {
	p.Previous = p.Current
	p.Current = current
	p.RunValue = run
}

// State returns the temporal state of an action.
func (p *PlayerInputData) State(action cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      p.Current[action],
		JustPressed:  p.Current[action] && !p.Previous[action],
		JustReleased: !p.Current[action] && p.Previous[action],
	}
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
