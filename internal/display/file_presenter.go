// Package display delivers composed frames to the physical screen.
// Platform-specific presenters are selected at build time; every
// platform can fall back to writing frames into an output directory.
package display

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const frameFilename = "current_frame.png"

// FilePresenter writes each frame as a PNG into the output directory,
// for platforms without a framebuffer and for headless testing. An
// external viewer pointed at the file shows the kiosk output.
type FilePresenter struct {
	logger    *zap.Logger
	outputDir string
}

// NewFilePresenter creates a file-backed presenter
func NewFilePresenter(logger *zap.Logger, outputDir string) *FilePresenter {
	return &FilePresenter{
		logger:    logger,
		outputDir: outputDir,
	}
}

// Present encodes the frame and writes it to the output directory
func (p *FilePresenter) Present(ctx context.Context, frame image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return fmt.Errorf("failed to encode frame: %w", err)
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(p.outputDir, frameFilename)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write frame file: %w", err)
	}

	p.logger.Debug("Frame written",
		zap.String("path", path),
		zap.Int("bytes", buf.Len()))
	return nil
}
