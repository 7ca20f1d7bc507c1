package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/EbrSiami/rc-transmitter/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"clock": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
	},
	"onOff": func(b bool) string {
		if b {
			return "ON"
		}
		return "OFF"
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>RC Transmitter</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.on { color: green; font-weight: bold; }
.off { color: #888; }
.warn { color: red; font-weight: bold; }
.connected { color: green; }
.disconnected { color: red; }
</style>
</head>
<body>
<h1>RC Transmitter</h1>

<h2>Channels</h2>
<table>
<tr><th>Throttle (CH1)</th><td>{{.Packet.Throttle}}</td></tr>
<tr><th>Pitch (CH2)</th><td>{{.Packet.Pitch}}</td></tr>
<tr><th>Roll (CH3)</th><td>{{.Packet.Roll}}</td></tr>
<tr><th>Yaw (CH4)</th><td>{{.Packet.Yaw}}</td></tr>
<tr><th>Aux1 (CH5)</th><td>{{.Packet.Aux1}}</td></tr>
<tr><th>Aux2 (CH6)</th><td>{{.Packet.Aux2}}</td></tr>
<tr><th>Aux3 (CH7)</th><td class="{{if .Packet.Aux3}}on{{else}}off{{end}}">{{onOff .Packet.Aux3}}</td></tr>
<tr><th>Aux4 (CH8)</th><td class="{{if .Packet.Aux4}}on{{else}}off{{end}}">{{onOff .Packet.Aux4}}</td></tr>
</table>

<h2>Battery</h2>
<table>
<tr><th>Voltage</th><td class="{{if .BatteryWarning}}warn{{end}}">{{printf "%.2f" .BatteryVolts}}V{{if .BatteryWarning}} LOW{{end}}</td></tr>
</table>

<h2>Timer</h2>
<table>
<tr><th>Profile</th><td>{{if eq .Timer.Minutes 0}}off{{else}}{{.Timer.Minutes}}m{{end}}</td></tr>
<tr><th>State</th><td>{{if .Timer.Running}}running, {{clock .Timer.Remaining}} left{{else if .Timer.Armed}}armed{{else}}idle{{end}}</td></tr>
</table>

<h2>Settings</h2>
<table>
<tr><th>Page</th><td>{{.Page}} (cursor {{.Cursor}})</td></tr>
<tr><th>Trim roll</th><td>{{.Settings.Trim1}}</td></tr>
<tr><th>Trim pitch</th><td>{{.Settings.Trim2}}</td></tr>
<tr><th>Trim yaw</th><td>{{.Settings.Trim3}}</td></tr>
<tr><th>Buzzer</th><td>{{onOff .Settings.BuzzerEnabled}}</td></tr>
<tr><th>Light mode</th><td>{{onOff .Settings.LightModeEnabled}}</td></tr>
<tr><th>Airplane mode</th><td>{{onOff .Settings.AirplaneMode}}</td></tr>
</table>

<h2>Connectivity</h2>
<table>
<tr><th>MQTT</th><td class="{{if .MQTTConnected}}connected{{else}}disconnected{{end}}">{{if .MQTTConnected}}connected{{else}}disconnected{{end}}</td></tr>
<tr><th>Broker</th><td>{{.Config.Broker}}</td></tr>
<tr><th>Serial</th><td>{{.Config.SerialDevice}} @ {{.Config.Baud}}</td></tr>
</table>

<h2>Event Counts</h2>
<table>
<tr><th>Frames sent</th><td>{{.Counts.FramesSent}}</td></tr>
<tr><th>Send errors</th><td>{{.Counts.SendErrors}}</td></tr>
<tr><th>Read errors</th><td>{{.Counts.ReadErrors}}</td></tr>
<tr><th>Timer starts</th><td>{{.Counts.TimerStarts}}</td></tr>
<tr><th>Timer expiries</th><td>{{.Counts.TimerExpiry}}</td></tr>
</table>

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>Poll</th><td>{{.Config.PollMs}}ms</td></tr>
<tr><th>Send interval</th><td>{{.Config.SendIntervalMs}}ms</td></tr>
<tr><th>Debounce</th><td>{{.Config.DebounceMs}}ms</td></tr>
<tr><th>Heartbeat</th><td>{{if eq .Config.HeartbeatMs 0}}disabled{{else}}{{.Config.HeartbeatMs}}ms{{end}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPPort}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	// Snapshot has Uptime() method but template needs a Duration field.
	data := struct {
		status.Snapshot
		Uptime time.Duration
	}{
		Snapshot: snap,
		Uptime:   snap.Uptime(),
	}
	indexTmpl.Execute(w, data)
}
