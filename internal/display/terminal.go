package display

import (
	"fmt"
	"io"
	"time"

	"github.com/EbrSiami/rc-transmitter/internal/menu"
)

// TerminalRenderer renders frames as single status lines on a terminal.
// It stands in for the OLED on development hosts.
type TerminalRenderer struct {
	w io.Writer
}

// NewTerminalRenderer creates a renderer writing to w.
func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{w: w}
}

// Render writes a one-line summary of the frame.
func (r *TerminalRenderer) Render(f Frame) error {
	var err error
	switch f.Page {
	case menu.PageChannels1:
		_, err = fmt.Fprintf(r.w, "\r[%s %d] THR:%3d PIT:%3d ROL:%3d YAW:%3d   ",
			f.Page, f.Cursor, f.Packet.Throttle, f.Packet.Pitch, f.Packet.Roll, f.Packet.Yaw)
	case menu.PageChannels2:
		_, err = fmt.Fprintf(r.w, "\r[%s %d] A1:%3d A2:%3d A3:%v A4:%v   ",
			f.Page, f.Cursor, f.Packet.Aux1, f.Packet.Aux2, f.Packet.Aux3, f.Packet.Aux4)
	case menu.PageDashboard:
		_, err = fmt.Fprintf(r.w, "\r[%s %d] batt:%.2fV timer:%s%s   ",
			f.Page, f.Cursor, f.BatteryVoltage, timerText(f), editMarker(f))
	case menu.PageTrims:
		_, err = fmt.Fprintf(r.w, "\r[%s %d] T1:%d T2:%d T3:%d   ",
			f.Page, f.Cursor, f.Settings.Trim1, f.Settings.Trim2, f.Settings.Trim3)
	default:
		_, err = fmt.Fprintf(r.w, "\r[%s %d]   ", f.Page, f.Cursor)
	}
	return err
}

func timerText(f Frame) string {
	if f.Timer.Running {
		rem := f.Timer.Remaining.Truncate(time.Second)
		return fmt.Sprintf("%02d:%02d", int(rem.Minutes()), int(rem.Seconds())%60)
	}
	if f.Timer.Minutes == 0 {
		return "--:--"
	}
	return fmt.Sprintf("%02d:00", f.Timer.Minutes)
}

func editMarker(f Frame) string {
	if f.EditingTimer {
		return " (edit)"
	}
	return ""
}
