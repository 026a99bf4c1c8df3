// Package monitor holds the display-environment shims: screen size
// detection and the best-effort foreground hint.
package monitor

import (
	"github.com/kbinani/screenshot"
	"github.com/lucidonlinenet/drastic-view/internal/config"
	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"go.uber.org/zap"
)

const (
	fallbackWidth  = 800
	fallbackHeight = 480
)

// NewScreenResolution determines the render surface size at startup.
// Configured dimensions win; otherwise the primary display is probed,
// falling back to the stock kiosk panel size.
func NewScreenResolution(logger *zap.Logger, cfg *config.Config) *domain.ScreenResolution {
	if cfg.ScreenWidth > 0 && cfg.ScreenHeight > 0 {
		res := &domain.ScreenResolution{Width: cfg.ScreenWidth, Height: cfg.ScreenHeight}
		logger.Info("Screen resolution from config",
			zap.Int("width", res.Width),
			zap.Int("height", res.Height))
		return res
	}

	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		logger.Warn("No active displays detected, falling back to 800x480")
		return &domain.ScreenResolution{Width: fallbackWidth, Height: fallbackHeight}
	}

	// Use primary monitor (index 0)
	bounds := screenshot.GetDisplayBounds(0)
	res := &domain.ScreenResolution{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	logger.Info("Screen resolution detected",
		zap.Int("width", res.Width),
		zap.Int("height", res.Height))

	return res
}
