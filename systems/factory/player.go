package factory

import (
	"image/color"

	"github.com/automoto/starcatch/archetypes"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/automoto/starcatch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns a player at (x, cfg.Player.SpawnY) bound to one
// controller. The body starts at rest.
func CreatePlayer(w donburi.World, id int, name string, tint color.RGBA, x float64, inputMap components.InputMap) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Player.SetValue(player, components.PlayerData{
		ID:   id,
		Name: name,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		Map: inputMap,
	})
	components.Transform.SetValue(player, components.TransformData{
		Position: math.NewVec2(x, cfg.Player.SpawnY),
		Z:        cfg.Player.Z,
	})
	components.Body.SetValue(player, components.BodyData{
		Kind:           components.BodyDynamic,
		Mass:           cfg.Player.Mass,
		LinearDamping:  cfg.Player.LinearDamping,
		AngularDamping: cfg.Player.AngularDamping,
		GravityScale:   1,
		Restitution:    cfg.Player.Restitution,
	})
	components.Collider.SetValue(player, components.ColliderData{
		Shape:  components.ShapeCircle,
		Radius: cfg.Player.Radius,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Texture: cfg.TextureFerris,
		Tint:    tint,
		Scale:   1,
	})
	attachObject(w, player, tags.ResolvPlayer)

	return player
}
