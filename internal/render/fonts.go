package render

import (
	"fmt"

	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Face sizes match the original 800x480 kiosk layout
const (
	bodyFontSize  = 25
	titleFontSize = 30
	clockFontSize = 80
)

// fontSet caches the three faces the canvas draws with. Faces are built
// once at startup and reused for every frame.
type fontSet struct {
	body  font.Face
	title font.Face
	clock font.Face
}

func newFontSet() (*fontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	face := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	fs := &fontSet{}
	if fs.body, err = face(regular, bodyFontSize); err != nil {
		return nil, fmt.Errorf("failed to build body face: %w", err)
	}
	if fs.title, err = face(bold, titleFontSize); err != nil {
		return nil, fmt.Errorf("failed to build title face: %w", err)
	}
	if fs.clock, err = face(regular, clockFontSize); err != nil {
		return nil, fmt.Errorf("failed to build clock face: %w", err)
	}
	return fs, nil
}

func (fs *fontSet) face(f domain.Font) font.Face {
	switch f {
	case domain.FontTitle:
		return fs.title
	case domain.FontClock:
		return fs.clock
	default:
		return fs.body
	}
}
