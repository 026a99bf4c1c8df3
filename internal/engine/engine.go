// Package engine drives the display loop: poll the catalog, rotate
// through slides, show the idle screen, repeat until cancelled.
package engine

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/lucidonlinenet/drastic-view/internal/config"
	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"github.com/lucidonlinenet/drastic-view/internal/slide"
	"go.uber.org/zap"
)

// Engine is the display orchestration loop. A single goroutine owns all
// polling, fetching and drawing; no state is shared across iterations
// beyond the startup configuration.
type Engine struct {
	logger     *zap.Logger
	cfg        *config.Config
	catalog    domain.Catalog
	fetcher    domain.Fetcher
	normalizer *slide.Normalizer
	renderer   domain.Renderer
	hint       domain.ForegroundHint
	now        func() time.Time
}

// NewEngine creates the display loop over its collaborators
func NewEngine(
	logger *zap.Logger,
	cfg *config.Config,
	catalog domain.Catalog,
	fetcher domain.Fetcher,
	normalizer *slide.Normalizer,
	renderer domain.Renderer,
	hint domain.ForegroundHint,
) *Engine {
	return &Engine{
		logger:     logger,
		cfg:        cfg,
		catalog:    catalog,
		fetcher:    fetcher,
		normalizer: normalizer,
		renderer:   renderer,
		hint:       hint,
		now:        time.Now,
	}
}

// Run executes display cycles until ctx is cancelled. Catalog, fetch and
// resolution failures degrade the affected slide or cycle; only a render
// backend failure is returned.
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Info("Display loop starting",
		zap.Duration("dwell", e.cfg.Dwell()),
		zap.Int("recentItemCount", e.cfg.RecentItemCount))

	for {
		if err := ctx.Err(); err != nil {
			e.logger.Info("Display loop stopped")
			return nil
		}
		if err := e.cycle(ctx); err != nil {
			return err
		}
	}
}

// cycle runs one Polling -> Rotating -> Idle pass
func (e *Engine) cycle(ctx context.Context) error {
	if err := e.hint.Raise(ctx); err != nil {
		e.logger.Debug("Foreground hint failed", zap.Error(err))
	}

	playing, err := e.catalog.CurrentlyPlaying(ctx)
	if err != nil {
		e.logger.Warn("Currently-playing query failed, treating as empty", zap.Error(err))
		playing = nil
	}

	slides := e.buildSlides(ctx, playing)

	for _, s := range slides {
		fanart := e.fetchImage(ctx, s.FanartURL)
		poster := e.fetchImage(ctx, s.PosterURL)

		if err := e.renderer.DrawSlide(ctx, s, fanart, poster); err != nil {
			return fmt.Errorf("draw slide %q: %w", s.Title, err)
		}
		if !e.dwell(ctx) {
			return nil
		}
	}

	// The playing count reuses this cycle's poll rather than querying
	// again; the idle screen tolerates one dwell of staleness.
	counts := e.idleCounts(ctx, len(playing))
	if err := e.renderer.DrawIdle(ctx, e.now(), counts); err != nil {
		return fmt.Errorf("draw idle screen: %w", err)
	}
	if !e.dwell(ctx) {
		return nil
	}
	return nil
}

// buildSlides maps this cycle's source to slides: active sessions when
// any exist, the recently-added listing otherwise.
func (e *Engine) buildSlides(ctx context.Context, playing []domain.PlaybackItem) []domain.Slide {
	if len(playing) > 0 {
		now := e.now()
		slides := make([]domain.Slide, 0, len(playing))
		for _, item := range playing {
			slides = append(slides, e.normalizer.FromPlayback(item, now))
		}
		return slides
	}

	recent, err := e.catalog.RecentlyAdded(ctx, e.cfg.RecentItemCount)
	if err != nil {
		e.logger.Warn("Recently-added query failed, showing idle screen", zap.Error(err))
		return nil
	}

	slides := make([]domain.Slide, 0, len(recent))
	for _, item := range recent {
		slides = append(slides, e.normalizer.FromLibrary(ctx, item))
	}
	return slides
}

// fetchImage degrades any fetch failure to "no image". Renders fall back
// to a solid background or a skipped poster.
func (e *Engine) fetchImage(ctx context.Context, url string) image.Image {
	img, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			e.logger.Warn("Image fetch failed, rendering without it",
				zap.String("url", url),
				zap.Error(err))
		}
		return nil
	}
	return img
}

// idleCounts collects the clock screen counters, zeroed on query failure
func (e *Engine) idleCounts(ctx context.Context, playing int) domain.IdleCounts {
	counts := domain.IdleCounts{Playing: playing}

	sections, err := e.catalog.LibraryCounts(ctx, []string{e.cfg.MovieSection, e.cfg.ShowSection})
	if err != nil {
		e.logger.Warn("Library counts query failed", zap.Error(err))
		return counts
	}
	counts.Movies = sections[e.cfg.MovieSection]
	counts.Shows = sections[e.cfg.ShowSection]
	return counts
}

// dwell blocks for the configured display time, returning false when the
// wait was interrupted by cancellation. The select wakes immediately on
// ctx.Done, so shutdown never waits out a full dwell.
func (e *Engine) dwell(ctx context.Context) bool {
	timer := time.NewTimer(e.cfg.Dwell())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		e.logger.Info("Display loop stopped")
		return false
	case <-timer.C:
		return true
	}
}
