// Package telemetry publishes transmitter events over MQTT for ground-side
// logging. Publishing is best-effort: the control loop never waits on the
// broker, and messages queued while offline are replayed on reconnect.
package telemetry

import (
	"encoding/json"
	"time"
)

// Topic is the MQTT topic for transmitter domain events.
const Topic = "rc/transmitter/events"

// TopicSystem is the MQTT topic for lifecycle events.
const TopicSystem = "rc/transmitter/system"

// EventType identifies a transmitter domain event.
type EventType string

const (
	EventLowBattery    EventType = "LOW_BATTERY"
	EventBatteryOK     EventType = "BATTERY_OK"
	EventTimerStarted  EventType = "TIMER_STARTED"
	EventTimerExpired  EventType = "TIMER_EXPIRED"
	EventTimerCanceled EventType = "TIMER_CANCELED"
	EventSettingsSaved EventType = "SETTINGS_SAVED"
)

// Event is a transmitter domain event.
type Event struct {
	Timestamp    time.Time
	Type         EventType
	BatteryVolts float64
	TimerMinutes int
}

// SystemEvent is a lifecycle event (startup, shutdown, heartbeat).
type SystemEvent struct {
	Timestamp  time.Time
	Event      string // "STARTUP", "SHUTDOWN", "HEARTBEAT"
	Reason     string // shutdown signal name, if any
	RawPayload []byte // pre-formatted status snapshot; used verbatim if set
	Retained   bool
}

// Publisher publishes events to the broker.
type Publisher interface {
	// Publish sends a domain event. A failure must not crash the caller.
	Publish(event Event) error

	// PublishSystem sends a lifecycle event.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// NopPublisher discards everything. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(Event) error             { return nil }
func (NopPublisher) PublishSystem(SystemEvent) error { return nil }
func (NopPublisher) Close() error                    { return nil }

// ConnectionStatus reports whether the broker connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// Payload is the JSON envelope for domain events.
type Payload struct {
	Transmitter EventPayload `json:"transmitter"`
}

// EventPayload carries the event details.
type EventPayload struct {
	Timestamp    string  `json:"timestamp"`
	Event        string  `json:"event"`
	BatteryVolts float64 `json:"battery_volts,omitempty"`
	TimerMinutes int     `json:"timer_minutes,omitempty"`
}

// FormatPayload creates the JSON payload for a domain event.
func FormatPayload(event Event) ([]byte, error) {
	return json.Marshal(Payload{
		Transmitter: EventPayload{
			Timestamp:    event.Timestamp.UTC().Format(time.RFC3339),
			Event:        string(event.Type),
			BatteryVolts: event.BatteryVolts,
			TimerMinutes: event.TimerMinutes,
		},
	})
}

// SystemPayload is the JSON envelope for simple lifecycle events without a
// full status snapshot.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner carries the lifecycle event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a lifecycle event. A
// preset RawPayload is returned directly.
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	if event.RawPayload != nil {
		return event.RawPayload, nil
	}
	return json.Marshal(SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
		},
	})
}
