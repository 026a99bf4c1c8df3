// Package render draws slide and idle screens onto a software canvas
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"go.uber.org/zap"
)

// ImageCanvas implements domain.Canvas on an in-memory RGBA surface.
// Present hands the composed frame to the display presenter. The canvas
// holds no state across frames beyond the surface and font faces.
type ImageCanvas struct {
	logger    *zap.Logger
	dc        *gg.Context
	fonts     *fontSet
	presenter domain.Presenter
	width     int
	height    int
}

// NewImageCanvas creates a canvas matching the screen resolution
func NewImageCanvas(logger *zap.Logger, res *domain.ScreenResolution, presenter domain.Presenter) (*ImageCanvas, error) {
	if res.Width <= 0 || res.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid canvas size %dx%d", domain.ErrRenderBackend, res.Width, res.Height)
	}

	fonts, err := newFontSet()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRenderBackend, err)
	}

	logger.Info("Canvas created",
		zap.Int("width", res.Width),
		zap.Int("height", res.Height))

	return &ImageCanvas{
		logger:    logger,
		dc:        gg.NewContext(res.Width, res.Height),
		fonts:     fonts,
		presenter: presenter,
		width:     res.Width,
		height:    res.Height,
	}, nil
}

// Clear fills the whole surface with the given color
func (cv *ImageCanvas) Clear(c color.Color) {
	cv.dc.SetColor(c)
	cv.dc.Clear()
}

// DrawImage scales img to w x h and blits it at (x, y). The scale is
// exact, not aspect-preserving, matching the fixed slide layout.
func (cv *ImageCanvas) DrawImage(img image.Image, x, y, w, h int) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	scaled := imaging.Resize(img, w, h, imaging.Lanczos)
	cv.dc.DrawImage(scaled, x, y)
}

// DrawRect fills a rectangle with the color at the given opacity
func (cv *ImageCanvas) DrawRect(x, y, w, h int, c color.Color, alpha uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cv.dc.SetRGBA255(int(n.R), int(n.G), int(n.B), int(alpha))
	cv.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	cv.dc.Fill()
}

// DrawText draws one line of text anchored at the top-left of its
// bounding box.
func (cv *ImageCanvas) DrawText(text string, f domain.Font, x, y int, c color.Color) {
	face := cv.fonts.face(f)
	cv.dc.SetFontFace(face)
	cv.dc.SetColor(c)
	// gg anchors strings at the baseline
	baseline := float64(y + face.Metrics().Ascent.Ceil())
	cv.dc.DrawString(text, float64(x), baseline)
}

// MeasureText returns the rendered width of text in pixels
func (cv *ImageCanvas) MeasureText(text string, f domain.Font) int {
	cv.dc.SetFontFace(cv.fonts.face(f))
	w, _ := cv.dc.MeasureString(text)
	return int(math.Ceil(w))
}

// Size returns the surface dimensions
func (cv *ImageCanvas) Size() (int, int) {
	return cv.width, cv.height
}

// Present pushes the composed frame to the display
func (cv *ImageCanvas) Present(ctx context.Context) error {
	if err := cv.presenter.Present(ctx, cv.dc.Image()); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRenderBackend, err)
	}
	return nil
}
