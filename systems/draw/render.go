package draw

import (
	"image/color"
	"sort"

	"github.com/automoto/starcatch/assets"
	"github.com/automoto/starcatch/components"
	"github.com/automoto/starcatch/systems"
	"github.com/automoto/starcatch/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	sprites = query.NewQuery(filter.And(
		filter.Contains(components.Transform, components.Sprite),
		filter.Not(filter.Contains(tags.Background)),
	))

	// reused between frames to avoid reallocating the draw list
	drawList []*donburi.Entry
)

// view maps world coordinates (origin at the center, +y up) onto the screen
type view struct {
	cx, cy float64
	camX   float64
	camY   float64
	zoom   float64
}

func newView(w donburi.World, screen *ebiten.Image) view {
	v := view{
		cx:   float64(screen.Bounds().Dx()) / 2,
		cy:   float64(screen.Bounds().Dy()) / 2,
		zoom: 1,
	}
	if entry, ok := components.Camera.First(w); ok {
		camera := components.Camera.Get(entry)
		v.camX, v.camY = camera.Position.X, camera.Position.Y
		if camera.Zoom > 0 {
			v.zoom = camera.Zoom
		}
	}
	return v
}

func (v view) toScreen(x, y float64) (float64, float64) {
	return v.cx + (x-v.camX)*v.zoom, v.cy - (y-v.camY)*v.zoom
}

// DrawBackground fills the screen with the star field, scaled about the
// screen center.
func DrawBackground(s *systems.Session, screen *ebiten.Image) {
	entry, ok := tags.Background.First(s.World)
	if !ok {
		return
	}
	sprite := components.Sprite.Get(entry)
	img := assets.GetTexture(sprite.Texture)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Scale(sprite.Scale, sprite.Scale)
	drawOp.GeoM.Translate(float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())/2)
	screen.DrawImage(img, drawOp)
}

// DrawSprites renders every textured entity back to front by Z, rotated by
// its transform and tinted by its sprite color.
func DrawSprites(s *systems.Session, screen *ebiten.Image) {
	v := newView(s.World, screen)

	drawList = drawList[:0]
	sprites.Each(s.World, func(e *donburi.Entry) {
		drawList = append(drawList, e)
	})
	sort.SliceStable(drawList, func(i, j int) bool {
		return components.Transform.Get(drawList[i]).Z < components.Transform.Get(drawList[j]).Z
	})

	for _, e := range drawList {
		t := components.Transform.Get(e)
		sprite := components.Sprite.Get(e)
		img := assets.GetTexture(sprite.Texture)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		x, y := v.toScreen(t.Position.X, t.Position.Y)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		drawOp.GeoM.Scale(sprite.Scale*v.zoom, sprite.Scale*v.zoom)
		// world rotation is counter-clockwise with +y up
		drawOp.GeoM.Rotate(-t.Rotation)
		drawOp.GeoM.Translate(x, y)
		drawOp.ColorScale.ScaleWithColor(sprite.Tint)
		screen.DrawImage(img, drawOp)
	}
}

// DrawParticles renders every emitter's live particles, fading with age.
func DrawParticles(s *systems.Session, screen *ebiten.Image) {
	v := newView(s.World, screen)

	components.Emitter.Each(s.World, func(e *donburi.Entry) {
		emitter := components.Emitter.Get(e)
		base := emitter.Config.Color
		for _, p := range emitter.Particles {
			if p.Life <= 0 || p.MaxLife <= 0 {
				continue
			}
			life := p.Life / p.MaxLife
			c := color.RGBA{
				R: uint8(float64(base.R) * life),
				G: uint8(float64(base.G) * life),
				B: uint8(float64(base.B) * life),
				A: uint8(float64(base.A) * life),
			}
			x, y := v.toScreen(p.Position.X, p.Position.Y)
			r := float32(emitter.Config.Size * (0.5 + 0.5*life) * v.zoom)
			vector.FillCircle(screen, float32(x), float32(y), r, c, true)
		}
	})
}
