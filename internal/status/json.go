package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event          string       `json:"event,omitempty"`
	Reason         string       `json:"reason,omitempty"`
	Page           string       `json:"page"`
	Cursor         int          `json:"cursor"`
	Channels       ChannelsJSON `json:"channels"`
	BatteryVolts   float64      `json:"battery_volts"`
	BatteryWarning bool         `json:"battery_warning"`
	Timer          TimerJSON    `json:"timer"`
	Trims          TrimsJSON    `json:"trims"`
	UptimeSeconds  int64        `json:"uptime_seconds"`
	StartTime      string       `json:"start_time"`
	Timestamp      string       `json:"timestamp"`
	MQTT           MQTTStatus   `json:"mqtt"`
	Counts         CountsJSON   `json:"event_counts"`
	Config         ConfigJSON   `json:"config"`
}

// ChannelsJSON is the JSON representation of the last channel packet.
type ChannelsJSON struct {
	Throttle uint8 `json:"throttle"`
	Pitch    uint8 `json:"pitch"`
	Roll     uint8 `json:"roll"`
	Yaw      uint8 `json:"yaw"`
	Aux1     uint8 `json:"aux1"`
	Aux2     uint8 `json:"aux2"`
	Aux3     bool  `json:"aux3"`
	Aux4     bool  `json:"aux4"`
}

// TimerJSON is the JSON representation of the countdown timer.
type TimerJSON struct {
	Minutes          int   `json:"minutes"`
	Armed            bool  `json:"armed"`
	Running          bool  `json:"running"`
	RemainingSeconds int64 `json:"remaining_seconds"`
}

// TrimsJSON is the JSON representation of the stored trims.
type TrimsJSON struct {
	Roll  int `json:"roll"`
	Pitch int `json:"pitch"`
	Yaw   int `json:"yaw"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// CountsJSON is the JSON representation of event counts.
type CountsJSON struct {
	FramesSent  int `json:"frames_sent"`
	SendErrors  int `json:"send_errors"`
	ReadErrors  int `json:"read_errors"`
	TimerStarts int `json:"timer_starts"`
	TimerExpiry int `json:"timer_expiry"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs         int64  `json:"poll_ms"`
	SendIntervalMs int64  `json:"send_interval_ms"`
	DebounceMs     int64  `json:"debounce_ms"`
	TrimDebounceMs int64  `json:"trim_debounce_ms"`
	HeartbeatMs    int64  `json:"heartbeat_ms"`
	Broker         string `json:"broker"`
	HTTPPort       string `json:"http_port"`
	SerialDevice   string `json:"serial_device"`
	Baud           int    `json:"baud"`
	StorePath      string `json:"store_path"`
}

func buildInner(snap Snapshot) StatusInner {
	return StatusInner{
		Page:   snap.Page.String(),
		Cursor: snap.Cursor,
		Channels: ChannelsJSON{
			Throttle: snap.Packet.Throttle,
			Pitch:    snap.Packet.Pitch,
			Roll:     snap.Packet.Roll,
			Yaw:      snap.Packet.Yaw,
			Aux1:     snap.Packet.Aux1,
			Aux2:     snap.Packet.Aux2,
			Aux3:     snap.Packet.Aux3,
			Aux4:     snap.Packet.Aux4,
		},
		BatteryVolts:   snap.BatteryVolts,
		BatteryWarning: snap.BatteryWarning,
		Timer: TimerJSON{
			Minutes:          snap.Timer.Minutes,
			Armed:            snap.Timer.Armed,
			Running:          snap.Timer.Running,
			RemainingSeconds: int64(snap.Timer.Remaining.Truncate(time.Second).Seconds()),
		},
		Trims: TrimsJSON{
			Roll:  snap.Settings.Trim1,
			Pitch: snap.Settings.Trim2,
			Yaw:   snap.Settings.Trim3,
		},
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
		Counts: CountsJSON{
			FramesSent:  snap.Counts.FramesSent,
			SendErrors:  snap.Counts.SendErrors,
			ReadErrors:  snap.Counts.ReadErrors,
			TimerStarts: snap.Counts.TimerStarts,
			TimerExpiry: snap.Counts.TimerExpiry,
		},
		Config: ConfigJSON{
			PollMs:         snap.Config.PollMs,
			SendIntervalMs: snap.Config.SendIntervalMs,
			DebounceMs:     snap.Config.DebounceMs,
			TrimDebounceMs: snap.Config.TrimDebounceMs,
			HeartbeatMs:    snap.Config.HeartbeatMs,
			Broker:         snap.Config.Broker,
			HTTPPort:       snap.Config.HTTPPort,
			SerialDevice:   snap.Config.SerialDevice,
			Baud:           snap.Config.Baud,
			StorePath:      snap.Config.StorePath,
		},
	}
}

// FormatJSON returns the JSON status for the web endpoint (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	inner := buildInner(snap)

	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}

// FormatStatusEvent returns the JSON status for an MQTT system event.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason

	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
