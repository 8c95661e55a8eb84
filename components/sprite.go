package components

import (
	"image/color"

	cfg "github.com/automoto/starcatch/config"
	"github.com/yohamta/donburi"
)

// SpriteData references a texture by id so gameplay code stays renderer-free.
// Rotation comes from the entity's transform.
type SpriteData struct {
	Texture cfg.TextureID
	Tint    color.RGBA
	Scale   float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
