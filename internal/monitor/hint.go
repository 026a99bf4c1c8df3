package monitor

import (
	"context"

	"go.uber.org/zap"
)

// NopHint is the default foreground hint: it does nothing. The display
// loop works identically whether or not the hint can reach the OS.
type NopHint struct{}

// Raise does nothing
func (NopHint) Raise(ctx context.Context) error {
	return nil
}

// newNopHint logs once so an operator knows the screen may blank
func newNopHint(logger *zap.Logger, reason string) NopHint {
	logger.Warn("Foreground hint disabled", zap.String("reason", reason))
	return NopHint{}
}
