//go:build linux
// +build linux

package display

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"go.uber.org/zap"
)

// FramebufferPresenter writes frames straight into a Linux framebuffer
// device. The device is assumed to be 32bpp XRGB, the common mode for
// the small HDMI/DSI panels this kiosk targets.
type FramebufferPresenter struct {
	logger *zap.Logger
	device *os.File
	res    *domain.ScreenResolution
	buf    []byte
}

// NewPresenter creates the platform presenter (Linux implementation).
// It uses the configured framebuffer device when present and falls back
// to the file presenter otherwise, so the daemon also runs under a
// desktop session.
func NewPresenter(logger *zap.Logger, devicePath, outputDir string, res *domain.ScreenResolution) (domain.Presenter, error) {
	f, err := os.OpenFile(devicePath, os.O_RDWR, 0)
	if err != nil {
		logger.Warn("Framebuffer unavailable, writing frames to output directory",
			zap.String("device", devicePath),
			zap.Error(err))
		return NewFilePresenter(logger, outputDir), nil
	}

	logger.Info("Framebuffer presenter initialized",
		zap.String("device", devicePath),
		zap.Int("width", res.Width),
		zap.Int("height", res.Height))

	return &FramebufferPresenter{
		logger: logger,
		device: f,
		res:    res,
		buf:    make([]byte, res.Width*res.Height*4),
	}, nil
}

// Present converts the frame to the device pixel format and writes it
func (p *FramebufferPresenter) Present(ctx context.Context, frame image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	bounds := frame.Bounds()
	if bounds.Dx() != p.res.Width || bounds.Dy() != p.res.Height {
		return fmt.Errorf("frame size %dx%d does not match framebuffer %dx%d",
			bounds.Dx(), bounds.Dy(), p.res.Width, p.res.Height)
	}

	rgba, ok := frame.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(bounds)
		draw.Draw(rgba, bounds, frame, bounds.Min, draw.Src)
	}

	// RGBA to little-endian XRGB: bytes per pixel are B, G, R, X
	for i := 0; i+3 < len(rgba.Pix); i += 4 {
		p.buf[i] = rgba.Pix[i+2]
		p.buf[i+1] = rgba.Pix[i+1]
		p.buf[i+2] = rgba.Pix[i]
		p.buf[i+3] = 0
	}

	if _, err := p.device.WriteAt(p.buf, 0); err != nil {
		return fmt.Errorf("failed to write framebuffer: %w", err)
	}
	return nil
}

// Close releases the framebuffer device
func (p *FramebufferPresenter) Close() error {
	return p.device.Close()
}
