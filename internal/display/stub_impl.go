//go:build !linux
// +build !linux

package display

import (
	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"go.uber.org/zap"
)

// NewPresenter creates the platform presenter. Direct framebuffer output
// only exists on Linux; other platforms write frames to the output
// directory for an external viewer.
func NewPresenter(logger *zap.Logger, devicePath, outputDir string, res *domain.ScreenResolution) (domain.Presenter, error) {
	logger.Info("Framebuffer output not supported on this platform, writing frames to output directory",
		zap.String("outputDir", outputDir))
	return NewFilePresenter(logger, outputDir), nil
}
