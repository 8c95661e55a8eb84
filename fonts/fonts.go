package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Hint   FontName = "hint"
	Score  FontName = "score"
	Winner FontName = "winner"
	Debug  FontName = "debug"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the HUD faces from the bundled Go fonts.
func LoadDefaults(hintSize, scoreSize, winnerSize float64) error {
	if err := LoadFontWithSize(Hint, goregular.TTF, hintSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Score, gobold.TTF, scoreSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Winner, gobold.TTF, winnerSize); err != nil {
		return err
	}
	return LoadFontWithSize(Debug, goregular.TTF, 12)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
