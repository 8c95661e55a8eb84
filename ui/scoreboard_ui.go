package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/starcatch/components"
	cfg "github.com/automoto/starcatch/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
)

// ScoreboardUI holds the ebitenui score row and draws the winner overlay
type ScoreboardUI struct {
	UI         *ebitenui.UI
	Scoreboard *components.ScoreboardData

	rows   *widget.Container
	labels []*widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	scoreFace  text.Face
	winnerFace text.Face
}

// NewScoreboardUI creates the score row for a scoreboard.
func NewScoreboardUI(sb *components.ScoreboardData) *ScoreboardUI {
	sui := &ScoreboardUI{
		Scoreboard: sb,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *ScoreboardUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	sui.scoreFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.ScoreFontSize,
	}
	sui.winnerFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.WinnerFontSize,
	}
}

func (sui *ScoreboardUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// One label per player, left to right in join order
	sui.rows = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.ScorePanelBg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	rootContainer.AddChild(sui.rows)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// syncRows rebuilds the labels when players join and refreshes the scores
// otherwise. Entries never leave the scoreboard, so the count only grows.
func (sui *ScoreboardUI) syncRows() {
	entries := sui.Scoreboard.Entries()

	if len(entries) != len(sui.labels) {
		sui.rows.RemoveChildren()
		sui.labels = sui.labels[:0]
		for _, entry := range entries {
			label := widget.NewLabel(
				widget.LabelOpts.Text(scoreLine(entry), &sui.scoreFace, &widget.LabelColor{
					Idle: entry.Color,
				}),
			)
			sui.labels = append(sui.labels, label)
			sui.rows.AddChild(label)
		}
		return
	}

	for i, entry := range entries {
		sui.labels[i].Label = scoreLine(entry)
	}
}

func scoreLine(entry components.ScoreEntry) string {
	return fmt.Sprintf("%s: %d", entry.Name, entry.Score)
}

// Update syncs the labels with the scoreboard and updates ebitenui.
func (sui *ScoreboardUI) Update() {
	sui.syncRows()
	sui.UI.Update()
}

// Draw renders the score row and, once a winner is declared, the fading
// winner overlay on top.
func (sui *ScoreboardUI) Draw(screen *ebiten.Image) {
	sui.UI.Draw(screen)
	sui.drawWinner(screen)
}

func (sui *ScoreboardUI) drawWinner(screen *ebiten.Image) {
	winner, ok := sui.Scoreboard.Winner()
	if !ok || winner.Alpha <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(w), float32(h), fade(cfg.UI.OverlayColor, winner.Alpha), false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(w)/2, float64(h)/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(winner.Color)
	op.ColorScale.ScaleAlpha(winner.Alpha)
	text.Draw(screen, fmt.Sprintf(cfg.UI.WinnerFormat, winner.Name), sui.winnerFace, op)
}

// fade scales a premultiplied color by alpha
func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
