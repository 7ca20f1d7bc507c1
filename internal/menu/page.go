// Package menu implements the page navigation state machine: the current
// page, per-page cursor, the settings menu actions, the dashboard timer
// editor, and the trim adjuster. It is the single writer of the settings
// record.
package menu

// Page identifies the active screen.
type Page int

const (
	PageChannels1 Page = iota // CH1-4 live values
	PageChannels2             // CH5-8 live values
	PageDashboard             // battery, timer, shortcuts
	PageTrims                 // trim adjustment
	PageMenu                  // settings menu
	PageInfo                  // about / credits
	PageCalibration           // stick calibration placeholder
	PageInvert                // per-channel inversion
)

// String returns the page title used by renderers.
func (p Page) String() string {
	switch p {
	case PageChannels1:
		return "Channels 1-4"
	case PageChannels2:
		return "Channels 5-8"
	case PageDashboard:
		return "Dashboard"
	case PageTrims:
		return "Trim Adjust"
	case PageMenu:
		return "Settings"
	case PageInfo:
		return "Info"
	case PageCalibration:
		return "Calibration"
	case PageInvert:
		return "Invert Channels"
	default:
		return "Unknown"
	}
}

// Settings menu entries, in display order.
const (
	MenuLightMode = iota
	MenuBuzzer
	MenuInvert
	MenuResetTrims
	MenuThrottleMode
	MenuCalibration
	MenuInfo
	MenuBack
	menuItemCount
)

// pageItems maps each page to its cursor slot count. Cursor arithmetic is
// always modular over this count, so navigation can never leave the page's
// bounds.
var pageItems = map[Page]int{
	PageChannels1:   2,
	PageChannels2:   2,
	PageDashboard:   3,
	PageTrims:       3,
	PageMenu:        menuItemCount,
	PageInfo:        1,
	PageCalibration: 1,
	PageInvert:      9, // 8 channels + back
}

// Items returns the number of cursor slots on the page.
func (p Page) Items() int {
	if n, ok := pageItems[p]; ok {
		return n
	}
	return 1
}

// Dashboard cursor slots.
const (
	dashSlotChannels = 0
	dashSlotTimer    = 2
)

// Trims page cursor slots.
const (
	trimSlotSave     = 0
	trimSlotSettings = 1
	trimSlotBack     = 2
)

// invertSlotBack is the trailing back slot on the inversion page.
const invertSlotBack = 8
