package systems

import (
	"math"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
)

// ApplyDeadzone zeroes axis values inside the symmetric dead zone and
// rescales the rest so output still spans -1 to 1.
func ApplyDeadzone(v, deadzone float64) float64 {
	if deadzone >= 1 {
		return 0
	}
	a := math.Abs(v)
	if a <= deadzone {
		return 0
	}
	scaled := (math.Min(a, 1) - deadzone) / (1 - deadzone)
	return math.Copysign(scaled, v)
}

// DefaultInputMap binds Jump and Run to one controller with the configured
// buttons and dead zone.
func DefaultInputMap(controllerID int, keyboard bool) components.InputMap {
	return components.InputMap{
		ControllerID: controllerID,
		Keyboard:     keyboard,
		Jump:         cfg.Input.JumpButton,
		Run:          cfg.Input.RunAxis,
		RunDeadzone:  cfg.Input.RunDeadzone,
	}
}

// GetPlayerAction returns the temporal state of an action for a player.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	return input.State(id)
}
