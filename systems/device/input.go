package device

import (
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

// Keyboard pseudo-controller bindings
var (
	keyJoin  = []ebiten.Key{ebiten.KeyEnter}
	keyJump  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}
	keyLeft  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	keyRight = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
)

var standardButtons = map[cfg.GamepadButton]ebiten.StandardGamepadButton{
	cfg.ButtonSouth: ebiten.StandardGamepadButtonRightBottom,
	cfg.ButtonEast:  ebiten.StandardGamepadButtonRightRight,
	cfg.ButtonWest:  ebiten.StandardGamepadButtonRightLeft,
	cfg.ButtonNorth: ebiten.StandardGamepadButtonRightTop,
	cfg.ButtonStart: ebiten.StandardGamepadButtonCenterRight,
}

var standardAxes = map[cfg.GamepadAxis]ebiten.StandardGamepadAxis{
	cfg.AxisLeftX:  ebiten.StandardGamepadAxisLeftStickHorizontal,
	cfg.AxisLeftY:  ebiten.StandardGamepadAxisLeftStickVertical,
	cfg.AxisRightX: ebiten.StandardGamepadAxisRightStickHorizontal,
	cfg.AxisRightY: ebiten.StandardGamepadAxisRightStickVertical,
}

// Controllers turns gamepad hot-plugging and the keyboard join key into
// controller events for the session.
type Controllers struct {
	justConnected []ebiten.GamepadID
	known         map[ebiten.GamepadID]struct{}
}

func NewControllers() *Controllers {
	return &Controllers{
		known: make(map[ebiten.GamepadID]struct{}),
	}
}

// Update publishes connect and disconnect events. They are handled by the
// join system on the same tick.
func (c *Controllers) Update(s *systems.Session) {
	c.justConnected = inpututil.AppendJustConnectedGamepadIDs(c.justConnected[:0])
	for _, id := range c.justConnected {
		c.known[id] = struct{}{}
		systems.PublishController(s.World, components.ControllerEvent{ID: int(id), Connected: true})
	}

	for id := range c.known {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(c.known, id)
			systems.PublishController(s.World, components.ControllerEvent{ID: int(id), Connected: false})
		}
	}

	if anyJustPressed(keyJoin) {
		systems.PublishController(s.World, components.ControllerEvent{
			ID:        cfg.Input.KeyboardControllerID,
			Connected: true,
			Keyboard:  true,
		})
	}
}

// UpdatePlayerInput polls every player's bound device into its input state.
func UpdatePlayerInput(s *systems.Session) {
	components.PlayerInput.Each(s.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		if input.Map.Keyboard {
			pollKeyboard(input)
			return
		}
		pollGamepad(input, ebiten.GamepadID(input.Map.ControllerID))
	})
}

func pollKeyboard(input *components.PlayerInputData) {
	var current [cfg.ActionCount]bool
	current[cfg.ActionJump] = anyPressed(keyJump)

	run := 0.0
	if anyPressed(keyLeft) {
		run--
	}
	if anyPressed(keyRight) {
		run++
	}
	current[cfg.ActionRun] = run != 0
	input.Push(current, run)
}

func pollGamepad(input *components.PlayerInputData, id ebiten.GamepadID) {
	var current [cfg.ActionCount]bool
	run := 0.0

	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		current[cfg.ActionJump] = ebiten.IsStandardGamepadButtonPressed(id, standardButtons[input.Map.Jump])
		run = ebiten.StandardGamepadAxisValue(id, standardAxes[input.Map.Run])
	} else {
		// Raw layouts: first button and first axis
		current[cfg.ActionJump] = ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton0)
		if ebiten.GamepadAxisCount(id) > 0 {
			run = ebiten.GamepadAxisValue(id, 0)
		}
	}

	run = systems.ApplyDeadzone(run, input.Map.RunDeadzone)
	current[cfg.ActionRun] = run != 0
	input.Push(current, run)
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
