//go:build linux
// +build linux

package monitor

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"go.uber.org/zap"
)

const (
	screenSaverName = "org.freedesktop.ScreenSaver"
	screenSaverPath = "/org/freedesktop/ScreenSaver"
)

// SessionBus defines the D-Bus operations the hint needs. The
// abstraction allows mocking D-Bus interactions in tests.
type SessionBus interface {
	// Object returns a handle on a bus object
	Object(dest string, path dbus.ObjectPath) dbus.BusObject

	// Close closes the bus connection
	Close() error
}

// ScreenSaverHint keeps the kiosk panel awake by simulating user
// activity on the session screensaver service once per display cycle.
type ScreenSaverHint struct {
	logger *zap.Logger
	bus    SessionBus
}

// NewForegroundHint creates the platform foreground hint (Linux
// implementation). Without a session bus the hint degrades to a no-op;
// the display loop must not depend on it.
func NewForegroundHint(logger *zap.Logger) domain.ForegroundHint {
	conn, err := dbus.SessionBus()
	if err != nil {
		return newNopHint(logger, fmt.Sprintf("session bus unavailable: %v", err))
	}
	logger.Info("Screensaver hint initialized")
	return &ScreenSaverHint{logger: logger, bus: conn}
}

// NewScreenSaverHint wires the hint to an explicit bus, used by tests
func NewScreenSaverHint(logger *zap.Logger, bus SessionBus) *ScreenSaverHint {
	return &ScreenSaverHint{logger: logger, bus: bus}
}

// Raise pokes the screensaver service so the display stays on
func (h *ScreenSaverHint) Raise(ctx context.Context) error {
	obj := h.bus.Object(screenSaverName, screenSaverPath)
	call := obj.CallWithContext(ctx, screenSaverName+".SimulateUserActivity", 0)
	if call.Err != nil {
		return fmt.Errorf("screensaver hint failed: %w", call.Err)
	}
	return nil
}
