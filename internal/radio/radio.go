// Package radio transmits the control packet to the RF module. The link is
// fire-and-forget: there is no acknowledgement path, and a failed write is
// dropped silently so the control loop keeps its fixed cadence.
package radio

import "github.com/EbrSiami/rc-transmitter/internal/channels"

// Sender transmits one control packet per call.
type Sender interface {
	// Send transmits the packet. Errors indicate a local write failure
	// only; delivery is never confirmed.
	Send(p channels.Packet) error

	// Close releases the link.
	Close() error
}
