package domain

import (
	"context"
	"image"
	"image/color"
	"time"
)

// Font selects one of the faces cached by the render backend
type Font int

const (
	// FontBody is the regular text face used for descriptions and counters
	FontBody Font = iota
	// FontTitle is the bold face used for slide titles
	FontTitle
	// FontClock is the large face used for the idle clock
	FontClock
)

// Catalog defines the media-server queries the display loop consumes.
// Implementations talk to a Plex-compatible HTTP API.
//
//go:generate mockgen -destination=mocks/domain_mock.go -package=mocks github.com/lucidonlinenet/drastic-view/internal/domain Catalog,Fetcher,Renderer,Presenter,ForegroundHint
type Catalog interface {
	// CurrentlyPlaying returns the active playback sessions
	CurrentlyPlaying(ctx context.Context) ([]PlaybackItem, error)

	// RecentlyAdded returns at most limit recently added library items,
	// newest first
	RecentlyAdded(ctx context.Context, limit int) ([]LibraryItem, error)

	// ResolveShow fetches the show record behind a season or show item
	ResolveShow(ctx context.Context, ratingKey string) (ShowMetadata, error)

	// LibraryCounts returns the item count per named library section
	LibraryCounts(ctx context.Context, sectionNames []string) (map[string]int, error)

	// TranscodeImageURL builds the absolute URL of a server-side resized
	// copy of the image at the given server path. Empty path yields an
	// empty URL. No I/O.
	TranscodeImageURL(path string, width, height int) string
}

// Fetcher retrieves and decodes remote artwork
type Fetcher interface {
	// Fetch downloads the image at url and decodes it. An empty url
	// returns (nil, nil); that is the "no image" case, not an error.
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// Renderer draws exactly one screen per call, always starting from a
// cleared canvas.
type Renderer interface {
	// DrawSlide renders one slide screen. fanart and poster may be nil,
	// in which case the background falls back to a solid fill and the
	// poster is skipped.
	DrawSlide(ctx context.Context, slide Slide, fanart, poster image.Image) error

	// DrawIdle renders the clock and summary counters
	DrawIdle(ctx context.Context, now time.Time, counts IdleCounts) error
}

// Canvas is the 2D drawing surface behind the renderer. Coordinates are
// pixels with the origin at the top-left; text is anchored at the
// top-left of its bounding box.
type Canvas interface {
	// Clear fills the whole surface with the given color
	Clear(c color.Color)

	// DrawImage scales img to w x h and blits it at (x, y)
	DrawImage(img image.Image, x, y, w, h int)

	// DrawRect fills a rectangle with the color at the given opacity
	// (0 transparent, 255 opaque)
	DrawRect(x, y, w, h int, c color.Color, alpha uint8)

	// DrawText draws a single line of text
	DrawText(text string, f Font, x, y int, c color.Color)

	// MeasureText returns the rendered width of text in pixels
	MeasureText(text string, f Font) int

	// Size returns the surface dimensions
	Size() (width, height int)

	// Present pushes the composed frame to the display
	Present(ctx context.Context) error
}

// Presenter delivers a finished frame to the physical display surface
type Presenter interface {
	Present(ctx context.Context, frame image.Image) error
}

// ForegroundHint nudges the OS to keep the kiosk surface visible and
// awake. Implementations are best-effort; the display loop calls Raise
// once per cycle and only logs failures.
type ForegroundHint interface {
	Raise(ctx context.Context) error
}
