package status

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/EbrSiami/rc-transmitter/internal/channels"
	"github.com/EbrSiami/rc-transmitter/internal/menu"
	"github.com/EbrSiami/rc-transmitter/internal/settings"
	"github.com/EbrSiami/rc-transmitter/internal/timer"
)

func TestNewTracker(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := Config{PollMs: 2, SendIntervalMs: 10, Broker: "tcp://localhost:1883", HTTPPort: ":80"}
	tr := NewTracker(start, cfg)

	snap := tr.Snapshot()
	if !snap.StartTime.Equal(start) {
		t.Errorf("StartTime: got %v, want %v", snap.StartTime, start)
	}
	if snap.Config.PollMs != 2 {
		t.Errorf("Config.PollMs: got %d, want 2", snap.Config.PollMs)
	}
	if snap.Config.HTTPPort != ":80" {
		t.Errorf("Config.HTTPPort: got %q, want %q", snap.Config.HTTPPort, ":80")
	}
	if snap.MQTTConnected {
		t.Error("expected MQTTConnected=false initially")
	}
}

func TestUpdateAndSnapshot(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	pkt := channels.Packet{Throttle: 10, Pitch: 128, Roll: 200}
	s := settings.Defaults()
	s.Trim1 = 2100
	tr.Update(menu.PageTrims, 1, pkt, s, 7.4, false, timer.Snapshot{Minutes: 5, Armed: true, Running: true}, Counts{FramesSent: 42, SendErrors: 1})

	snap := tr.Snapshot()
	if snap.Page != menu.PageTrims {
		t.Errorf("Page: got %v, want PageTrims", snap.Page)
	}
	if snap.Cursor != 1 {
		t.Errorf("Cursor: got %d, want 1", snap.Cursor)
	}
	if snap.Packet.Roll != 200 {
		t.Errorf("Packet.Roll: got %d, want 200", snap.Packet.Roll)
	}
	if snap.Settings.Trim1 != 2100 {
		t.Errorf("Settings.Trim1: got %d, want 2100", snap.Settings.Trim1)
	}
	if snap.BatteryVolts != 7.4 {
		t.Errorf("BatteryVolts: got %v, want 7.4", snap.BatteryVolts)
	}
	if !snap.Timer.Running {
		t.Error("expected Timer.Running=true")
	}
	if snap.Counts.FramesSent != 42 {
		t.Errorf("Counts.FramesSent: got %d, want 42", snap.Counts.FramesSent)
	}
}

func TestSetMQTTConnected(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})

	tr.SetMQTTConnected(true)
	if !tr.Snapshot().MQTTConnected {
		t.Error("expected MQTTConnected=true")
	}

	tr.SetMQTTConnected(false)
	if tr.Snapshot().MQTTConnected {
		t.Error("expected MQTTConnected=false")
	}
}

func TestSnapshotUptime(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := Snapshot{
		StartTime: start,
		Now:       start.Add(15 * time.Minute),
	}

	if snap.Uptime() != 15*time.Minute {
		t.Errorf("Uptime: got %v, want 15m", snap.Uptime())
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	tr.Update(menu.PageDashboard, 0, channels.Packet{Throttle: 5}, settings.Defaults(), 7.4, false, timer.Snapshot{}, Counts{})

	snap1 := tr.Snapshot()

	tr.Update(menu.PageMenu, 2, channels.Packet{Throttle: 99}, settings.Defaults(), 6.1, true, timer.Snapshot{}, Counts{})

	// snap1 should still reflect old state
	if snap1.Page != menu.PageDashboard {
		t.Error("snapshot should be a copy; Page was modified")
	}
	if snap1.Packet.Throttle != 5 {
		t.Error("snapshot should be a copy; Packet was modified")
	}
}

func testSnapshot() Snapshot {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := settings.Defaults()
	s.Trim1 = 2053
	return Snapshot{
		Page:           menu.PageDashboard,
		Cursor:         2,
		Packet:         channels.Packet{Throttle: 0, Pitch: 128, Roll: 128, Yaw: 128, Aux1: 255, Aux3: true},
		Settings:       s,
		BatteryVolts:   7.21,
		BatteryWarning: false,
		Timer:          timer.Snapshot{Minutes: 5, Armed: true, Running: true, Remaining: 90 * time.Second},
		Counts:         Counts{FramesSent: 100, SendErrors: 2, ReadErrors: 1},
		StartTime:      start,
		Now:            start.Add(15 * time.Minute),
		MQTTConnected:  true,
		Config:         Config{PollMs: 2, SendIntervalMs: 10, HeartbeatMs: 900000, Broker: "tcp://localhost:1883", HTTPPort: ":80", SerialDevice: "/dev/ttyUSB0", Baud: 115200},
	}
}

func TestFormatJSON(t *testing.T) {
	data := FormatJSON(testSnapshot())

	var parsed StatusJSON
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if parsed.Status.Page != "Dashboard" {
		t.Errorf("Page: got %q, want Dashboard", parsed.Status.Page)
	}
	if parsed.Status.Channels.Pitch != 128 {
		t.Errorf("Channels.Pitch: got %d, want 128", parsed.Status.Channels.Pitch)
	}
	if !parsed.Status.Channels.Aux3 {
		t.Error("expected Channels.Aux3=true")
	}
	if parsed.Status.BatteryVolts != 7.21 {
		t.Errorf("BatteryVolts: got %v, want 7.21", parsed.Status.BatteryVolts)
	}
	if parsed.Status.Timer.RemainingSeconds != 90 {
		t.Errorf("Timer.RemainingSeconds: got %d, want 90", parsed.Status.Timer.RemainingSeconds)
	}
	if parsed.Status.Trims.Roll != 2053 {
		t.Errorf("Trims.Roll: got %d, want 2053", parsed.Status.Trims.Roll)
	}
	if parsed.Status.UptimeSeconds != 900 {
		t.Errorf("UptimeSeconds: got %d, want 900", parsed.Status.UptimeSeconds)
	}
	if parsed.Status.MQTT.Connected != true {
		t.Error("expected MQTT.Connected=true")
	}
	if parsed.Status.Counts.FramesSent != 100 {
		t.Errorf("Counts.FramesSent: got %d, want 100", parsed.Status.Counts.FramesSent)
	}
	// Event and Reason should be omitted
	if parsed.Status.Event != "" {
		t.Errorf("expected empty Event for web format, got %q", parsed.Status.Event)
	}
	if parsed.Status.Reason != "" {
		t.Errorf("expected empty Reason for web format, got %q", parsed.Status.Reason)
	}
}

func TestFormatStatusEvent(t *testing.T) {
	data := FormatStatusEvent(testSnapshot(), "HEARTBEAT", "")

	var parsed StatusJSON
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if parsed.Status.Event != "HEARTBEAT" {
		t.Errorf("Event: got %q, want HEARTBEAT", parsed.Status.Event)
	}
	if parsed.Status.Reason != "" {
		t.Errorf("Reason: got %q, want empty", parsed.Status.Reason)
	}
	if parsed.Status.Page != "Dashboard" {
		t.Errorf("Page: got %q, want Dashboard", parsed.Status.Page)
	}
}

func TestFormatStatusEventShutdown(t *testing.T) {
	data := FormatStatusEvent(testSnapshot(), "SHUTDOWN", "SIGTERM")

	var parsed StatusJSON
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if parsed.Status.Event != "SHUTDOWN" {
		t.Errorf("Event: got %q, want SHUTDOWN", parsed.Status.Event)
	}
	if parsed.Status.Reason != "SIGTERM" {
		t.Errorf("Reason: got %q, want SIGTERM", parsed.Status.Reason)
	}
}

func TestFormatStatusEventOmitsReasonWhenEmpty(t *testing.T) {
	data := FormatStatusEvent(testSnapshot(), "STARTUP", "")

	// Verify "reason" is not in the raw JSON output
	var raw map[string]interface{}
	json.Unmarshal(data, &raw)
	st := raw["status"].(map[string]interface{})
	if _, exists := st["reason"]; exists {
		t.Error("reason should be omitted when empty")
	}
	if st["event"] != "STARTUP" {
		t.Errorf("event: got %v, want STARTUP", st["event"])
	}
}

func TestConcurrentAccess(t *testing.T) {
	tr := NewTracker(time.Now(), Config{})
	var wg sync.WaitGroup

	// Writer
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			tr.Update(menu.PageDashboard, i%3, channels.Packet{Throttle: uint8(i)}, settings.Defaults(), 7.4, false, timer.Snapshot{}, Counts{FramesSent: i})
			tr.SetMQTTConnected(i%2 == 0)
		}
	}()

	// Reader
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			snap := tr.Snapshot()
			_ = snap.Uptime()
		}
	}()

	wg.Wait()
}
