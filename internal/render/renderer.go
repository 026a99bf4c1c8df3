package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"github.com/lucidonlinenet/drastic-view/internal/layout"
	strftime "github.com/ncruces/go-strftime"
	"go.uber.org/zap"
)

// Slide screen layout. Fixed pixel positions sized for the 800x480
// kiosk panel; the idle counters anchor to the bottom edge so larger
// panels keep them on screen.
const (
	posterX = 50
	posterY = 90
	posterW = 200
	posterH = 300

	textX            = 300
	titleY           = 90
	shadowOffset     = 2
	descriptionY     = 140
	descriptionWidth = 500
	lineHeight       = 30
	maxDescLines     = 5

	overlayAlpha = 128

	counterMarginBottom = 80
	counterMoviesX      = 50
	counterShowsX       = 300
	counterPlayingX     = 550
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// Renderer draws one screen per call onto the canvas. It keeps no state
// between calls; every draw starts from a cleared surface.
type Renderer struct {
	logger     *zap.Logger
	canvas     domain.Canvas
	timeFormat string
}

// NewRenderer creates a renderer drawing onto the given canvas.
// timeFormat is the strftime-style format for the idle clock.
func NewRenderer(logger *zap.Logger, canvas domain.Canvas, timeFormat string) *Renderer {
	return &Renderer{
		logger:     logger,
		canvas:     canvas,
		timeFormat: timeFormat,
	}
}

// DrawSlide renders one slide screen: fanart background (solid fill when
// absent), contrast overlay, poster, shadowed title, wrapped description
// and the slide's optional metadata blocks, stacked in order.
func (r *Renderer) DrawSlide(ctx context.Context, slide domain.Slide, fanart, poster image.Image) error {
	w, h := r.canvas.Size()

	r.canvas.Clear(black)
	if fanart != nil {
		r.canvas.DrawImage(fanart, 0, 0, w, h)
	}
	r.canvas.DrawRect(0, 0, w, h, black, overlayAlpha)

	if poster != nil {
		r.canvas.DrawImage(poster, posterX, posterY, posterW, posterH)
	}

	// Shadow first so the title overprints it
	r.canvas.DrawText(slide.Title, domain.FontTitle, textX+shadowOffset, titleY+shadowOffset, black)
	r.canvas.DrawText(slide.Title, domain.FontTitle, textX, titleY, white)

	lines := layout.Wrap(slide.Description, descriptionWidth, func(s string) int {
		return r.canvas.MeasureText(s, domain.FontBody)
	})
	if len(lines) > maxDescLines {
		lines = lines[:maxDescLines]
	}

	y := descriptionY
	for _, line := range lines {
		r.canvas.DrawText(line, domain.FontBody, textX, y, white)
		y += lineHeight
	}

	if slide.SeasonEpisode != nil {
		r.canvas.DrawText(fmt.Sprintf("Seasons: %d", slide.SeasonEpisode.Seasons), domain.FontBody, textX, y+20, white)
		r.canvas.DrawText(fmt.Sprintf("Episodes: %d", slide.SeasonEpisode.Episodes), domain.FontBody, textX, y+50, white)
		y += 80
	}

	if slide.Playback != nil {
		r.canvas.DrawText(fmt.Sprintf("User: %s", slide.Playback.Viewer), domain.FontBody, textX, y+20, white)
		r.canvas.DrawText(fmt.Sprintf("Status: %s", slide.Playback.Mode), domain.FontBody, textX, y+50, white)
		r.canvas.DrawText(fmt.Sprintf("Ends At: %s", slide.Playback.EndsAt.Format("15:04:05")), domain.FontBody, textX, y+80, white)
	}

	return r.canvas.Present(ctx)
}

// DrawIdle renders the clock screen: current time centered in the large
// face and the three library counters along the bottom.
func (r *Renderer) DrawIdle(ctx context.Context, now time.Time, counts domain.IdleCounts) error {
	w, h := r.canvas.Size()

	r.canvas.Clear(black)

	clock := strftime.Format(r.timeFormat, now)
	clockW := r.canvas.MeasureText(clock, domain.FontClock)
	r.canvas.DrawText(clock, domain.FontClock, (w-clockW)/2, h/2-clockFontSize/2, white)

	counterY := h - counterMarginBottom
	r.canvas.DrawText(fmt.Sprintf("Total Movies: %d", counts.Movies), domain.FontBody, counterMoviesX, counterY, white)
	r.canvas.DrawText(fmt.Sprintf("Total TV Shows: %d", counts.Shows), domain.FontBody, counterShowsX, counterY, white)
	r.canvas.DrawText(fmt.Sprintf("Currently Playing: %d", counts.Playing), domain.FontBody, counterPlayingX, counterY, white)

	return r.canvas.Present(ctx)
}
