// Package status provides a thread-safe status tracker for the transmitter
// daemon. It is written by the control loop and read by HTTP handlers.
package status

import (
	"sync"
	"time"

	"github.com/EbrSiami/rc-transmitter/internal/channels"
	"github.com/EbrSiami/rc-transmitter/internal/menu"
	"github.com/EbrSiami/rc-transmitter/internal/settings"
	"github.com/EbrSiami/rc-transmitter/internal/timer"
)

// Counts accumulates loop-level event counters.
type Counts struct {
	FramesSent  int
	SendErrors  int
	ReadErrors  int
	TimerStarts int
	TimerExpiry int
}

// Config contains daemon configuration for display.
type Config struct {
	PollMs         int64
	SendIntervalMs int64
	DebounceMs     int64
	TrimDebounceMs int64
	HeartbeatMs    int64
	Broker         string
	HTTPPort       string
	SerialDevice   string
	Baud           int
	StorePath      string
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	Page           menu.Page
	Cursor         int
	Packet         channels.Packet
	Settings       settings.Settings
	BatteryVolts   float64
	BatteryWarning bool
	Timer          timer.Snapshot
	Counts         Counts
	StartTime      time.Time
	Now            time.Time
	MQTTConnected  bool
	Config         Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the navigation, channel, battery, and timer state.
// Called from runLoop on every tick.
func (t *Tracker) Update(page menu.Page, cursor int, packet channels.Packet, s settings.Settings, volts float64, warning bool, snap timer.Snapshot, counts Counts) {
	t.mu.Lock()
	t.snap.Page = page
	t.snap.Cursor = cursor
	t.snap.Packet = packet
	t.snap.Settings = s
	t.snap.BatteryVolts = volts
	t.snap.BatteryWarning = warning
	t.snap.Timer = snap
	t.snap.Counts = counts
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
