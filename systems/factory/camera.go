package factory

import (
	"github.com/automoto/starcatch/archetypes"
	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centered on the world origin.
func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.NewVec2(0, 0),
		Zoom:     1,
	})
	return camera
}

// CreateBackground spawns the starry backdrop behind everything else.
func CreateBackground(w donburi.World) *donburi.Entry {
	bg := archetypes.Background.Spawn(w)
	components.Transform.SetValue(bg, components.TransformData{
		Z: -1,
	})
	components.Sprite.SetValue(bg, components.SpriteData{
		Texture: cfg.TextureBackground,
		Tint:    cfg.White,
		Scale:   cfg.UI.BackgroundZoom,
	})
	return bg
}
