// Package display defines the rendering boundary. The core hands a Frame
// snapshot to a Renderer and never waits on it; how a frame becomes pixels
// (or text) is entirely the renderer's business.
package display

import (
	"time"

	"github.com/EbrSiami/rc-transmitter/internal/channels"
	"github.com/EbrSiami/rc-transmitter/internal/menu"
	"github.com/EbrSiami/rc-transmitter/internal/settings"
	"github.com/EbrSiami/rc-transmitter/internal/timer"
)

// Frame is a point-in-time snapshot of everything a page can show. It is a
// value type: renderers may keep it after the call returns.
type Frame struct {
	Page   menu.Page
	Cursor int

	Settings settings.Settings
	Packet   channels.Packet

	BatteryVoltage float64
	BatteryWarning bool

	Timer        timer.Snapshot
	EditingTimer bool
}

// Renderer draws one frame. Implementations must be synchronous and must
// not block beyond their own drawing time.
type Renderer interface {
	Render(f Frame) error
}

// RefreshInterval returns how often a page needs redrawing. Live channel
// pages refresh fast; data-light pages refresh slower to keep loop cost
// down.
func RefreshInterval(p menu.Page) time.Duration {
	switch p {
	case menu.PageChannels1, menu.PageChannels2:
		return 100 * time.Millisecond
	case menu.PageDashboard:
		return 250 * time.Millisecond
	default:
		return 200 * time.Millisecond
	}
}
