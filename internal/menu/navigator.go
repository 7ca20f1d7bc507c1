package menu

import (
	"log"
	"time"

	"github.com/EbrSiami/rc-transmitter/internal/alarm"
	"github.com/EbrSiami/rc-transmitter/internal/settings"
	"github.com/EbrSiami/rc-transmitter/internal/timer"
)

// Navigator owns the page state machine. It consumes the three logical
// navigation events (Up, Down, Enter), mutates the settings record, and
// triggers persistence at explicit save points only.
type Navigator struct {
	page   Page
	cursor int

	// editingTimer redirects Up/Down on the dashboard to the timer
	// duration selector instead of the cursor.
	editingTimer bool

	settings  *settings.Settings
	countdown *timer.Countdown
	beeper    *alarm.Beeper
	store     settings.Store
}

// NewNavigator creates a Navigator starting on the dashboard.
func NewNavigator(s *settings.Settings, countdown *timer.Countdown, beeper *alarm.Beeper, store settings.Store) *Navigator {
	return &Navigator{
		page:      PageDashboard,
		settings:  s,
		countdown: countdown,
		beeper:    beeper,
		store:     store,
	}
}

// Page returns the active page.
func (n *Navigator) Page() Page { return n.page }

// Cursor returns the cursor index on the active page, always within
// [0, page.Items()-1].
func (n *Navigator) Cursor() int { return n.cursor }

// EditingTimer reports whether the dashboard timer editor is open.
func (n *Navigator) EditingTimer() bool { return n.editingTimer }

// goTo transitions to a page, resetting the cursor to the destination's
// default slot.
func (n *Navigator) goTo(page Page, cursor int) {
	n.page = page
	n.cursor = cursor
}

// HandleUp processes an Up click.
func (n *Navigator) HandleUp(now time.Time) {
	n.beeper.Request(alarm.ToneNav, false)
	if n.editingTimer {
		n.countdown.CycleNext()
		return
	}
	items := n.page.Items()
	n.cursor = (n.cursor - 1 + items) % items
}

// HandleDown processes a Down click.
func (n *Navigator) HandleDown(now time.Time) {
	n.beeper.Request(alarm.ToneNav, false)
	if n.editingTimer {
		n.countdown.CyclePrev()
		return
	}
	n.cursor = (n.cursor + 1) % n.page.Items()
}

// HandleEnter processes an Enter click at the current cursor position.
func (n *Navigator) HandleEnter(now time.Time) {
	n.beeper.Request(alarm.ToneEnter, false)

	switch n.page {
	case PageDashboard:
		n.enterDashboard(now)
	case PageChannels1:
		if n.cursor == 0 {
			n.goTo(PageChannels2, 0)
		} else {
			n.goTo(PageDashboard, 0)
		}
	case PageChannels2:
		if n.cursor == 0 {
			n.goTo(PageTrims, 0)
		} else {
			n.goTo(PageChannels1, 0)
		}
	case PageTrims:
		n.enterTrims()
	case PageMenu:
		n.enterMenu()
	case PageInvert:
		n.enterInvert()
	case PageInfo, PageCalibration:
		n.goTo(PageMenu, 0)
	}
}

func (n *Navigator) enterDashboard(now time.Time) {
	switch n.cursor {
	case dashSlotChannels:
		n.goTo(PageChannels1, 0)
	case dashSlotTimer:
		if n.editingTimer {
			// Commit the selected duration: arm and start, or disarm
			// when "off" is selected.
			n.editingTimer = false
			n.countdown.Commit(now)
			n.settings.TimerProfile = n.countdown.Profile()
			n.persist()
		} else {
			// Opening the editor cancels any running countdown without
			// firing the expiry alert.
			n.editingTimer = true
			n.countdown.Disarm()
		}
		n.beeper.Request(alarm.ToneCommit, false)
	}
}

func (n *Navigator) enterTrims() {
	switch n.cursor {
	case trimSlotSave:
		n.persist()
		n.beeper.Request(alarm.ToneCommit, false)
	case trimSlotSettings:
		n.goTo(PageMenu, 0)
	case trimSlotBack:
		n.goTo(PageChannels2, 0)
	}
}

func (n *Navigator) enterMenu() {
	switch n.cursor {
	case MenuLightMode:
		n.settings.LightModeEnabled = !n.settings.LightModeEnabled
		n.persist()
		n.beeper.Request(alarm.ToneCommit, false)
	case MenuBuzzer:
		n.settings.BuzzerEnabled = !n.settings.BuzzerEnabled
		n.beeper.SetMuted(!n.settings.BuzzerEnabled)
		n.persist()
		n.beeper.Request(alarm.ToneCommit, false)
	case MenuInvert:
		n.goTo(PageInvert, 0)
	case MenuResetTrims:
		n.settings.Trim1 = settings.TrimCenter
		n.settings.Trim2 = settings.TrimCenter
		n.settings.Trim3 = settings.TrimCenter
		n.persist()
		n.beeper.Request(alarm.ToneCommit, false)
	case MenuThrottleMode:
		n.settings.AirplaneMode = !n.settings.AirplaneMode
		n.persist()
		n.beeper.Request(alarm.ToneCommit, false)
	case MenuCalibration:
		n.goTo(PageCalibration, 0)
	case MenuInfo:
		n.goTo(PageInfo, 0)
	case MenuBack:
		n.goTo(PageTrims, 0)
	}
}

func (n *Navigator) enterInvert() {
	if n.cursor == invertSlotBack {
		// Land back on the inversion entry so the operator returns to
		// where they left the menu.
		n.goTo(PageMenu, MenuInvert)
		return
	}
	n.settings.Inverted[n.cursor] = !n.settings.Inverted[n.cursor]
	n.persist()
	n.beeper.Request(alarm.ToneCommit, false)
}

// persist writes the whole record in one transfer. A storage failure is
// logged and otherwise ignored; the in-memory record stays authoritative
// for the rest of the session.
func (n *Navigator) persist() {
	if err := settings.Save(n.store, *n.settings); err != nil {
		log.Printf("menu: save settings: %v", err)
	}
}
