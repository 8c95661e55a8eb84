package systems

import (
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
)

// UpdateMovement turns each player's run axis into a horizontal force and a
// fresh jump press into an upward velocity. Jumps only count near the ground.
func UpdateMovement(s *Session) {
	tags.Player.Each(s.World, func(e *donburi.Entry) {
		input := components.PlayerInput.Get(e)
		body := components.Body.Get(e)
		transform := components.Transform.Get(e)

		body.Force.X = input.RunValue * cfg.Player.RunForce
		body.Force.Y = 0

		if GetPlayerAction(input, cfg.ActionJump).JustPressed && transform.Position.Y < cfg.Player.GroundedY {
			body.Velocity.Y = cfg.Player.JumpSpeed
		}
	})
}
