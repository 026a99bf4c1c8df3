package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingCanvas captures draw calls so screen composition can be
// asserted without rasterizing anything. Text is measured at ten pixels
// per rune.
type recordingCanvas struct {
	width  int
	height int
	ops    []string
	texts  []string
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{width: 800, height: 480}
}

func (c *recordingCanvas) Clear(_ color.Color) {
	c.ops = append(c.ops, "clear")
}

func (c *recordingCanvas) DrawImage(_ image.Image, x, y, w, h int) {
	c.ops = append(c.ops, fmt.Sprintf("image(%d,%d,%d,%d)", x, y, w, h))
}

func (c *recordingCanvas) DrawRect(x, y, w, h int, _ color.Color, alpha uint8) {
	c.ops = append(c.ops, fmt.Sprintf("rect(%d,%d,%d,%d,a=%d)", x, y, w, h, alpha))
}

func (c *recordingCanvas) DrawText(text string, f domain.Font, x, y int, col color.Color) {
	shade := "white"
	if col == black {
		shade = "black"
	}
	c.ops = append(c.ops, fmt.Sprintf("text(f=%d,%d,%d,%s)", f, x, y, shade))
	c.texts = append(c.texts, text)
}

func (c *recordingCanvas) MeasureText(text string, _ domain.Font) int {
	return 10 * len([]rune(text))
}

func (c *recordingCanvas) Size() (int, int) { return c.width, c.height }

func (c *recordingCanvas) Present(_ context.Context) error {
	c.ops = append(c.ops, "present")
	return nil
}

func testImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 4, 4))
}

func TestRenderer_DrawSlide_FullComposition(t *testing.T) {
	canvas := newRecordingCanvas()
	r := NewRenderer(zap.NewNop(), canvas, "%H:%M:%S")

	s := domain.Slide{
		Title:       "Heat",
		Description: "A heist.",
	}

	require.NoError(t, r.DrawSlide(context.Background(), s, testImage(), testImage()))

	assert.Equal(t, []string{
		"clear",
		"image(0,0,800,480)",   // fanart fills the screen
		"rect(0,0,800,480,a=128)", // contrast overlay
		"image(50,90,200,300)", // poster
		"text(f=1,302,92,black)", // title shadow first
		"text(f=1,300,90,white)",
		"text(f=0,300,140,white)", // single description line
		"present",
	}, canvas.ops)
}

func TestRenderer_DrawSlide_MissingArtwork(t *testing.T) {
	canvas := newRecordingCanvas()
	r := NewRenderer(zap.NewNop(), canvas, "%H:%M:%S")

	s := domain.Slide{Title: "Heat", Description: "A heist."}
	require.NoError(t, r.DrawSlide(context.Background(), s, nil, nil))

	// No image ops at all: solid background, poster skipped
	for _, op := range canvas.ops {
		assert.NotContains(t, op, "image(")
	}
	assert.Equal(t, "clear", canvas.ops[0])
	assert.Equal(t, "present", canvas.ops[len(canvas.ops)-1])
}

func TestRenderer_DrawSlide_DescriptionCappedAtFiveLines(t *testing.T) {
	canvas := newRecordingCanvas()
	r := NewRenderer(zap.NewNop(), canvas, "%H:%M:%S")

	// Each word forces its own line at width 500 / 10px per rune
	s := domain.Slide{
		Title:       "Wordy",
		Description: strings.Repeat("incomprehensibilitiesincomprehensibilitiesincomprehensibilities ", 8),
	}
	require.NoError(t, r.DrawSlide(context.Background(), s, nil, nil))

	var lineYs []int
	for _, op := range canvas.ops {
		var f, x, y int
		var shade string
		if n, _ := fmt.Sscanf(op, "text(f=%d,%d,%d,%s", &f, &x, &y, &shade); n == 4 && f == 0 {
			lineYs = append(lineYs, y)
		}
	}
	assert.Equal(t, []int{140, 170, 200, 230, 260}, lineYs, "five description lines at fixed line height")
}

func TestRenderer_DrawSlide_OptionalBlocks(t *testing.T) {
	t.Run("Show slide stacks season block", func(t *testing.T) {
		canvas := newRecordingCanvas()
		r := NewRenderer(zap.NewNop(), canvas, "%H:%M:%S")

		s := domain.Slide{
			Title:         "Some Show",
			Description:   "A show.",
			SeasonEpisode: &domain.SeasonEpisodeInfo{Seasons: 3, Episodes: 30},
		}
		require.NoError(t, r.DrawSlide(context.Background(), s, nil, nil))

		assert.Contains(t, canvas.texts, "Seasons: 3")
		assert.Contains(t, canvas.texts, "Episodes: 30")
		for _, txt := range canvas.texts {
			assert.NotContains(t, txt, "User:")
		}
	})

	t.Run("Playback slide stacks session block", func(t *testing.T) {
		canvas := newRecordingCanvas()
		r := NewRenderer(zap.NewNop(), canvas, "%H:%M:%S")

		s := domain.Slide{
			Title:       "Heat",
			Description: "A heist.",
			Playback: &domain.PlaybackInfo{
				Viewer: "alice",
				Mode:   "Direct Play",
				EndsAt: time.Date(2024, 5, 4, 21, 4, 5, 0, time.UTC),
			},
		}
		require.NoError(t, r.DrawSlide(context.Background(), s, nil, nil))

		assert.Contains(t, canvas.texts, "User: alice")
		assert.Contains(t, canvas.texts, "Status: Direct Play")
		assert.Contains(t, canvas.texts, "Ends At: 21:04:05")
		for _, txt := range canvas.texts {
			assert.NotContains(t, txt, "Seasons:")
		}
	})
}

func TestRenderer_DrawIdle(t *testing.T) {
	canvas := newRecordingCanvas()
	r := NewRenderer(zap.NewNop(), canvas, "%H:%M:%S")

	now := time.Date(2024, 5, 4, 20, 15, 30, 0, time.UTC)
	counts := domain.IdleCounts{Movies: 412, Shows: 87, Playing: 2}

	require.NoError(t, r.DrawIdle(context.Background(), now, counts))

	assert.Equal(t, "clear", canvas.ops[0])
	assert.Equal(t, "present", canvas.ops[len(canvas.ops)-1])

	require.Len(t, canvas.texts, 4)
	assert.Equal(t, "20:15:30", canvas.texts[0], "strftime clock")
	assert.Equal(t, "Total Movies: 412", canvas.texts[1])
	assert.Equal(t, "Total TV Shows: 87", canvas.texts[2])
	assert.Equal(t, "Currently Playing: 2", canvas.texts[3])

	// Clock centered: 8 runes at 10px each -> x = (800-80)/2
	assert.Equal(t, "text(f=2,360,200,white)", canvas.ops[1])
	// Counters along the bottom edge
	assert.Equal(t, "text(f=0,50,400,white)", canvas.ops[2])
	assert.Equal(t, "text(f=0,300,400,white)", canvas.ops[3])
	assert.Equal(t, "text(f=0,550,400,white)", canvas.ops[4])
}
