//go:build !linux
// +build !linux

package monitor

import (
	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"go.uber.org/zap"
)

// NewForegroundHint creates the platform foreground hint. Only Linux has
// an implementation; elsewhere the hint is a logged no-op.
func NewForegroundHint(logger *zap.Logger) domain.ForegroundHint {
	return newNopHint(logger, "not implemented for this platform")
}
