package assets

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"

	cfg "github.com/automoto/starcatch/config"
	"github.com/hajimehoshi/ebiten/v2"
	xvector "golang.org/x/image/vector"
)

const (
	ferrisWidth  = 80
	ferrisHeight = 56
	starSize     = 64
	fieldWidth   = 2048
	fieldHeight  = 1152
	fieldStars   = 700
	fieldSeed    = 42
)

// TextureLoader generates textures on first use and caches the GPU images.
type TextureLoader struct {
	cache map[cfg.TextureID]*ebiten.Image
}

func NewTextureLoader() *TextureLoader {
	return &TextureLoader{
		cache: make(map[cfg.TextureID]*ebiten.Image),
	}
}

// MustLoad returns the image for id, generating it on the first call.
func (l *TextureLoader) MustLoad(id cfg.TextureID) *ebiten.Image {
	if img, ok := l.cache[id]; ok {
		return img
	}
	src, err := Generate(id)
	if err != nil {
		panic(err)
	}
	img := ebiten.NewImageFromImage(src)
	l.cache[id] = img
	return img
}

var textureLoader = NewTextureLoader()

// GetTexture returns the shared image for id.
func GetTexture(id cfg.TextureID) *ebiten.Image {
	return textureLoader.MustLoad(id)
}

// PreloadTextures generates every texture up front so the first frame
// does not stall.
func PreloadTextures() {
	for _, id := range []cfg.TextureID{cfg.TextureFerris, cfg.TextureStar, cfg.TextureBackground} {
		textureLoader.MustLoad(id)
	}
}

// Generate rasterizes a texture into a CPU image. Ferris and the star are
// drawn in light tones so the sprite tint carries the player color.
func Generate(id cfg.TextureID) (*image.RGBA, error) {
	switch id {
	case cfg.TextureFerris:
		return drawFerris(), nil
	case cfg.TextureStar:
		return drawStar(), nil
	case cfg.TextureBackground:
		return drawStarField(fieldSeed), nil
	}
	return nil, fmt.Errorf("unknown texture %q", id)
}

type painter struct {
	dst *image.RGBA
	z   *xvector.Rasterizer
}

func newPainter(w, h int) *painter {
	return &painter{
		dst: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   xvector.NewRasterizer(w, h),
	}
}

func (p *painter) fill(c color.Color, path func(z *xvector.Rasterizer)) {
	b := p.dst.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
	path(p.z)
	p.z.Draw(p.dst, b, image.NewUniform(c), image.Point{})
}

// ellipse approximates an ellipse with four cubic curves
func ellipse(cx, cy, rx, ry float32) func(z *xvector.Rasterizer) {
	const k = 0.5523
	return func(z *xvector.Rasterizer) {
		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+k*ry, cx+k*rx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-k*rx, cy+ry, cx-rx, cy+k*ry, cx-rx, cy)
		z.CubeTo(cx-rx, cy-k*ry, cx-k*rx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+k*rx, cy-ry, cx+rx, cy-k*ry, cx+rx, cy)
		z.ClosePath()
	}
}

func polygon(pts [][2]float32) func(z *xvector.Rasterizer) {
	return func(z *xvector.Rasterizer) {
		z.MoveTo(pts[0][0], pts[0][1])
		for _, pt := range pts[1:] {
			z.LineTo(pt[0], pt[1])
		}
		z.ClosePath()
	}
}

func drawFerris() *image.RGBA {
	p := newPainter(ferrisWidth, ferrisHeight)
	shell := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	shade := color.RGBA{R: 190, G: 190, B: 190, A: 255}

	// legs
	for i := 0; i < 3; i++ {
		dx := float32(i) * 8
		p.fill(shade, polygon([][2]float32{{22 - dx, 40}, {26 - dx, 42}, {16 - dx, 54}, {13 - dx, 52}}))
		p.fill(shade, polygon([][2]float32{{58 + dx, 40}, {54 + dx, 42}, {64 + dx, 54}, {67 + dx, 52}}))
	}
	// arms and claws
	p.fill(shade, polygon([][2]float32{{18, 32}, {22, 28}, {12, 18}, {9, 21}}))
	p.fill(shade, polygon([][2]float32{{62, 32}, {58, 28}, {68, 18}, {71, 21}}))
	p.fill(shell, ellipse(9, 14, 7, 7))
	p.fill(shell, ellipse(71, 14, 7, 7))

	p.fill(shell, ellipse(40, 34, 28, 16))

	// eyes
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	p.fill(white, ellipse(32, 24, 6, 6))
	p.fill(white, ellipse(48, 24, 6, 6))
	p.fill(black, ellipse(33, 24, 3, 3))
	p.fill(black, ellipse(49, 24, 3, 3))
	return p.dst
}

// starPoints returns a five pointed star around (cx, cy), tip up.
func starPoints(cx, cy, outer, inner float64) [][2]float32 {
	pts := make([][2]float32, 0, 10)
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, [2]float32{float32(cx + r*math.Cos(a)), float32(cy + r*math.Sin(a))})
	}
	return pts
}

func drawStar() *image.RGBA {
	p := newPainter(starSize, starSize)
	c := float64(starSize) / 2
	p.fill(cfg.Gold, polygon(starPoints(c, c+2, 30, 12)))
	p.fill(cfg.PaleYellow, polygon(starPoints(c, c+2, 18, 7)))
	return p.dst
}

// drawStarField paints a dark vertical gradient sprinkled with stars. The
// same seed always yields the same field.
func drawStarField(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fieldWidth, fieldHeight))
	for y := 0; y < fieldHeight; y++ {
		t := float64(y) / fieldHeight
		c := color.RGBA{
			R: uint8(8 + 14*t),
			G: uint8(10 + 12*t),
			B: uint8(32 + 36*t),
			A: 255,
		}
		for x := 0; x < fieldWidth; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	r := rand.New(rand.NewSource(seed))
	for i := 0; i < fieldStars; i++ {
		x := r.Intn(fieldWidth)
		y := r.Intn(fieldHeight)
		v := uint8(150 + r.Intn(106))
		c := color.RGBA{R: v, G: v, B: uint8(math.Min(255, float64(v)+20)), A: 255}
		img.SetRGBA(x, y, c)
		if r.Intn(6) == 0 {
			img.SetRGBA(x+1, y, c)
			img.SetRGBA(x, y+1, c)
			img.SetRGBA(x+1, y+1, c)
		}
	}
	return img
}
