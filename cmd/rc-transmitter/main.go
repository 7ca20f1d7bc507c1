// Command rc-transmitter polls the sticks, switches, and buttons of an RC
// transmitter, streams the resulting channel packet to the radio link, and
// publishes operational events to MQTT.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EbrSiami/rc-transmitter/internal/adc"
	"github.com/EbrSiami/rc-transmitter/internal/alarm"
	"github.com/EbrSiami/rc-transmitter/internal/battery"
	"github.com/EbrSiami/rc-transmitter/internal/button"
	"github.com/EbrSiami/rc-transmitter/internal/channels"
	"github.com/EbrSiami/rc-transmitter/internal/display"
	"github.com/EbrSiami/rc-transmitter/internal/gpio"
	"github.com/EbrSiami/rc-transmitter/internal/menu"
	"github.com/EbrSiami/rc-transmitter/internal/radio"
	"github.com/EbrSiami/rc-transmitter/internal/settings"
	"github.com/EbrSiami/rc-transmitter/internal/status"
	"github.com/EbrSiami/rc-transmitter/internal/telemetry"
	"github.com/EbrSiami/rc-transmitter/internal/timer"
	"github.com/EbrSiami/rc-transmitter/internal/web"
)

func main() {
	poll := flag.Duration("poll", 2*time.Millisecond, "Input polling interval")
	sendInterval := flag.Duration("send-interval", 10*time.Millisecond, "Radio frame interval")
	debounce := flag.Duration("debounce", button.DefaultDebounce, "Navigation button debounce")
	trimDebounce := flag.Duration("trim-debounce", 50*time.Millisecond, "Trim button debounce")
	broker := flag.String("broker", "tcp://192.168.1.200:1883", "MQTT broker address (empty to disable)")
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	httpAddr := flag.String("http", ":8080", "HTTP status address (empty to disable)")
	serialDev := flag.String("serial", "/dev/ttyUSB0", "Radio serial device")
	baud := flag.Int("baud", 115200, "Radio serial baud rate")
	storePath := flag.String("store", "/var/lib/rc-transmitter/settings.bin", "Settings file path")
	adcDev := flag.String("adc", adc.DefaultDevicePath, "IIO ADC sysfs directory")
	gpioChip := flag.String("gpio-chip", "gpiochip0", "GPIO character device name")
	buzzerPin := flag.Int("buzzer-pin", gpio.DefaultBuzzerPin, "BCM pin of the buzzer")
	throttleMode := flag.String("throttle-mode", "persisted", `Throttle curve: "persisted", "normal", or "airplane"`)
	printSettings := flag.Bool("print-settings", false, "Print stored settings and exit")

	flag.Parse()

	if err := run(config{
		poll:          *poll,
		sendInterval:  *sendInterval,
		debounce:      *debounce,
		trimDebounce:  *trimDebounce,
		broker:        *broker,
		heartbeat:     *heartbeat,
		httpAddr:      *httpAddr,
		serialDev:     *serialDev,
		baud:          *baud,
		storePath:     *storePath,
		adcDev:        *adcDev,
		gpioChip:      *gpioChip,
		buzzerPin:     *buzzerPin,
		throttleMode:  *throttleMode,
		printSettings: *printSettings,
	}); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

type config struct {
	poll          time.Duration
	sendInterval  time.Duration
	debounce      time.Duration
	trimDebounce  time.Duration
	broker        string
	heartbeat     time.Duration
	httpAddr      string
	serialDev     string
	baud          int
	storePath     string
	adcDev        string
	gpioChip      string
	buzzerPin     int
	throttleMode  string
	printSettings bool
}

func run(cfg config) error {
	store, err := settings.NewFileStore(cfg.storePath)
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}

	s, defaulted, err := settings.Load(store)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if defaulted {
		log.Printf("settings invalid or blank, defaults written")
	}

	if cfg.printSettings {
		fmt.Printf("trims: roll=%d pitch=%d yaw=%d\n", s.Trim1, s.Trim2, s.Trim3)
		fmt.Printf("buzzer=%s light=%s airplane=%s\n",
			onOff(s.BuzzerEnabled), onOff(s.LightModeEnabled), onOff(s.AirplaneMode))
		fmt.Printf("inverted=%v timer=%dm\n", s.Inverted, settings.TimerMinutes[s.TimerProfile])
		return nil
	}

	if err := applyThrottleMode(cfg.throttleMode, &s, store); err != nil {
		return err
	}

	// Initialize hardware
	gpioReader, err := gpio.NewRealReader(cfg.gpioChip, gpio.DefaultPins)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer gpioReader.Close()

	buzzer, err := gpio.NewRealBuzzer(cfg.gpioChip, cfg.buzzerPin)
	if err != nil {
		return fmt.Errorf("init buzzer: %w", err)
	}
	defer buzzer.Close()

	adcReader, err := adc.NewIIOReader(cfg.adcDev)
	if err != nil {
		return fmt.Errorf("init adc: %w", err)
	}
	defer adcReader.Close()

	sender, err := radio.NewSerialSender(cfg.serialDev, cfg.baud)
	if err != nil {
		return fmt.Errorf("init radio: %w", err)
	}
	defer sender.Close()

	// Initialize MQTT
	var publisher telemetry.Publisher = telemetry.NopPublisher{}
	var mqttStatus telemetry.ConnectionStatus
	if cfg.broker != "" {
		real, err := telemetry.NewRealPublisher(cfg.broker)
		if err != nil {
			return fmt.Errorf("init mqtt: %w", err)
		}
		publisher = real
		mqttStatus = real
	}
	defer publisher.Close()

	// Initialize status tracker (before STARTUP so snapshot is available)
	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:         cfg.poll.Milliseconds(),
		SendIntervalMs: cfg.sendInterval.Milliseconds(),
		DebounceMs:     cfg.debounce.Milliseconds(),
		TrimDebounceMs: cfg.trimDebounce.Milliseconds(),
		HeartbeatMs:    cfg.heartbeat.Milliseconds(),
		Broker:         cfg.broker,
		HTTPPort:       cfg.httpAddr,
		SerialDevice:   cfg.serialDev,
		Baud:           cfg.baud,
		StorePath:      cfg.storePath,
	})

	snap := tracker.Snapshot()
	startupEvent := telemetry.SystemEvent{
		Timestamp:  snap.Now,
		Event:      "STARTUP",
		Retained:   true,
		RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
	}
	if err := publisher.PublishSystem(startupEvent); err != nil {
		log.Printf("failed to publish startup event: %v", err)
	} else {
		log.Printf("published startup event")
	}

	// Start HTTP status server
	if cfg.httpAddr != "" {
		srv := web.New(cfg.httpAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", cfg.httpAddr)
	}

	log.Printf("started: poll=%v send=%v debounce=%v broker=%s serial=%s",
		cfg.poll, cfg.sendInterval, cfg.debounce, cfg.broker, cfg.serialDev)

	ticker := time.NewTicker(cfg.poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	beeper := alarm.NewBeeper(!s.BuzzerEnabled)
	countdown := timer.New(s.TimerProfile)
	saves := &countingStore{Store: store}

	l := &loop{
		gpioReader: gpioReader,
		buzzer:     buzzer,
		adcReader:  adcReader,
		sender:     sender,
		renderer:   display.NewTerminalRenderer(os.Stdout),
		publisher:  publisher,
		mqttStatus: mqttStatus,
		tracker:    tracker,

		settings:     &s,
		beeper:       beeper,
		batteryAlarm: alarm.NewBatteryAlarm(),
		batteryMon:   battery.NewMonitor(adcReader),
		countdown:    countdown,
		nav:          menu.NewNavigator(&s, countdown, beeper, saves),
		trims:        menu.NewTrimAdjuster(&s, beeper),
		buttons:      newButtonSet(cfg.debounce, cfg.trimDebounce),
		saves:        saves,

		sendInterval: cfg.sendInterval,
		heartbeat:    cfg.heartbeat,
	}

	return runLoop(l, time.Now, ticker.C, sigCh)
}

// applyThrottleMode resolves the -throttle-mode flag against the stored
// airplane-mode setting. An explicit mode overrides the stored one and is
// persisted.
func applyThrottleMode(mode string, s *settings.Settings, store settings.Store) error {
	switch mode {
	case "persisted":
		return nil
	case "normal", "airplane":
		airplane := mode == "airplane"
		if s.AirplaneMode == airplane {
			return nil
		}
		s.AirplaneMode = airplane
		if err := settings.Save(store, *s); err != nil {
			return fmt.Errorf("persist throttle mode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("invalid -throttle-mode %q", mode)
	}
}

// countingStore counts successful settings writes so the loop can publish a
// saved event without coupling the menu to telemetry.
type countingStore struct {
	settings.Store
	writes int
}

func (c *countingStore) WriteBlock(offset int, buf []byte) error {
	if err := c.Store.WriteBlock(offset, buf); err != nil {
		return err
	}
	c.writes++
	return nil
}

// buttonSet debounces every input button. Navigation buttons use the longer
// debounce window; trim buttons use the shorter one so held-trim stepping
// starts promptly.
type buttonSet struct {
	enter *button.Button
	up    *button.Button
	down  *button.Button
	trim  [6]*button.Button // Trim1Inc..Trim3Dec, in gpio line order
}

func newButtonSet(debounce, trimDebounce time.Duration) *buttonSet {
	bs := &buttonSet{
		enter: button.New(debounce),
		up:    button.New(debounce),
		down:  button.New(debounce),
	}
	for i := range bs.trim {
		bs.trim[i] = button.New(trimDebounce)
	}
	return bs
}

// update feeds one raw sample into every debouncer.
func (bs *buttonSet) update(sample gpio.Sample, now time.Time) {
	bs.enter.Update(sample[gpio.LineEnter], now)
	bs.up.Update(sample[gpio.LineUp], now)
	bs.down.Update(sample[gpio.LineDown], now)
	for i := range bs.trim {
		bs.trim[i].Update(sample[gpio.LineTrim1Inc+i], now)
	}
}

func (bs *buttonSet) trimInputs() menu.TrimInputs {
	in := func(i int) menu.TrimInput {
		return menu.TrimInput{
			Clicked: bs.trim[i].WasJustPressed(),
			Held:    bs.trim[i].IsBeingHeld(),
		}
	}
	return menu.TrimInputs{
		Axis1Inc: in(0), Axis1Dec: in(1),
		Axis2Inc: in(2), Axis2Dec: in(3),
		Axis3Inc: in(4), Axis3Dec: in(5),
	}
}

// boardSampler adapts the ADC reader and the latest GPIO sample to the
// channel computation. Switch lines are pull-up wired, so logical on is the
// low level.
type boardSampler struct {
	adc    adc.Reader
	sample gpio.Sample
}

var analogChan = map[channels.AnalogInput]int{
	channels.InputRoll:     adc.ChanRoll,
	channels.InputPitch:    adc.ChanPitch,
	channels.InputThrottle: adc.ChanThrottle,
	channels.InputYaw:      adc.ChanYaw,
	channels.InputAux1:     adc.ChanAux1,
	channels.InputAux2:     adc.ChanAux2,
}

func (b *boardSampler) ReadAnalog(input channels.AnalogInput) (int, error) {
	return b.adc.Read(analogChan[input])
}

func (b *boardSampler) ReadDigital(input channels.DigitalInput) (bool, error) {
	switch input {
	case channels.InputSwitchA:
		return !b.sample[gpio.LineSwitchA], nil
	default:
		return !b.sample[gpio.LineSwitchB], nil
	}
}

// loop carries every collaborator of the control loop. Tests construct it
// from fakes; run wires the real drivers.
type loop struct {
	gpioReader gpio.Reader
	buzzer     gpio.Buzzer
	adcReader  adc.Reader
	sender     radio.Sender
	renderer   display.Renderer
	publisher  telemetry.Publisher
	mqttStatus telemetry.ConnectionStatus
	tracker    *status.Tracker

	settings     *settings.Settings
	beeper       *alarm.Beeper
	batteryAlarm *alarm.BatteryAlarm
	batteryMon   *battery.Monitor
	countdown    *timer.Countdown
	nav          *menu.Navigator
	trims        *menu.TrimAdjuster
	buttons      *buttonSet
	saves        *countingStore

	sendInterval time.Duration
	heartbeat    time.Duration
}

func runLoop(l *loop, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	startTime := now()

	sampler := &boardSampler{adc: l.adcReader}
	packet := channels.Neutral()

	var counts status.Counts
	var lastSend, lastRender time.Time
	lastHeartbeat := startTime
	buzzerLevel := false
	batteryWarned := false
	lastSaves := 0

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			if l.buzzer != nil {
				l.buzzer.Set(false)
			}
			event := telemetry.SystemEvent{
				Timestamp: now(),
				Event:     "SHUTDOWN",
				Reason:    signalName,
				Retained:  true,
			}
			if l.tracker != nil {
				if l.mqttStatus != nil {
					l.tracker.SetMQTTConnected(l.mqttStatus.IsConnected())
				}
				snap := l.tracker.Snapshot()
				event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", signalName)
			}
			if err := l.publisher.PublishSystem(event); err != nil {
				log.Printf("failed to publish shutdown event: %v", err)
			} else {
				log.Printf("published shutdown event")
			}
			return nil

		case <-tick:
			t := now()

			sample, err := l.gpioReader.Read()
			if err != nil {
				log.Printf("gpio read error: %v", err)
				counts.ReadErrors++
				continue
			}
			l.buttons.update(sample, t)
			sampler.sample = sample

			// Battery and low-voltage alarm
			volts := l.batteryMon.Update()
			batteryActive := l.batteryAlarm.Tick(volts, t)
			warning := l.batteryAlarm.Active()
			if warning != batteryWarned {
				batteryWarned = warning
				eventType := telemetry.EventBatteryOK
				if warning {
					eventType = telemetry.EventLowBattery
					log.Printf("low battery: %.2fV", volts)
				} else {
					log.Printf("battery recovered: %.2fV", volts)
				}
				if err := l.publisher.Publish(telemetry.Event{
					Timestamp:    t,
					Type:         eventType,
					BatteryVolts: volts,
				}); err != nil {
					log.Printf("publish error: %v", err)
				}
			}

			// Trim buttons step regardless of the active page
			l.trims.Apply(l.buttons.trimInputs(), t)

			// Navigation
			wasRunning := l.countdown.Running()
			if l.buttons.up.WasJustPressed() {
				l.nav.HandleUp(t)
			}
			if l.buttons.down.WasJustPressed() {
				l.nav.HandleDown(t)
			}
			if l.buttons.enter.WasJustPressed() {
				l.nav.HandleEnter(t)
			}
			if !wasRunning && l.countdown.Running() {
				counts.TimerStarts++
				l.publishTimerEvent(telemetry.EventTimerStarted, t)
			} else if wasRunning && !l.countdown.Running() {
				l.publishTimerEvent(telemetry.EventTimerCanceled, t)
			}

			if l.saves != nil && l.saves.writes != lastSaves {
				lastSaves = l.saves.writes
				if err := l.publisher.Publish(telemetry.Event{
					Timestamp: t,
					Type:      telemetry.EventSettingsSaved,
				}); err != nil {
					log.Printf("publish error: %v", err)
				}
			}

			// Countdown: one forced tick tone per second while running
			if l.countdown.TickBeep() {
				l.beeper.Request(alarm.ToneTick, true)
			}
			if l.countdown.Tick(t) {
				counts.TimerExpiry++
				log.Printf("countdown expired")
				l.beeper.Request(alarm.ToneExpiry, true)
				l.beeper.Request(alarm.ToneExpiry, true)
				l.publishTimerEvent(telemetry.EventTimerExpired, t)
			}

			// Channel packet
			packet = channels.Compute(sampler, *l.settings, packet)

			if t.Sub(lastSend) >= l.sendInterval {
				lastSend = t
				if err := l.sender.Send(packet); err != nil {
					counts.SendErrors++
					log.Printf("radio send error: %v", err)
				} else {
					counts.FramesSent++
				}
			}

			// Buzzer level: UI tones and the battery pattern share the line
			level := l.beeper.Tick(t) || batteryActive
			if level != buzzerLevel {
				buzzerLevel = level
				if err := l.buzzer.Set(level); err != nil {
					log.Printf("buzzer error: %v", err)
				}
			}

			// Display
			if t.Sub(lastRender) >= display.RefreshInterval(l.nav.Page()) {
				lastRender = t
				frame := display.Frame{
					Page:           l.nav.Page(),
					Cursor:         l.nav.Cursor(),
					Settings:       *l.settings,
					Packet:         packet,
					BatteryVoltage: volts,
					BatteryWarning: warning,
					Timer:          l.countdown.Snapshot(),
					EditingTimer:   l.nav.EditingTimer(),
				}
				if err := l.renderer.Render(frame); err != nil {
					log.Printf("render error: %v", err)
				}
			}

			// Heartbeat
			if l.heartbeat > 0 && t.Sub(lastHeartbeat) >= l.heartbeat {
				lastHeartbeat = t
				hbEvent := telemetry.SystemEvent{
					Timestamp: t,
					Event:     "HEARTBEAT",
				}
				if l.tracker != nil {
					l.updateTracker(packet, volts, warning, counts)
					snap := l.tracker.Snapshot()
					hbEvent.RawPayload = status.FormatStatusEvent(snap, "HEARTBEAT", "")
				}
				if err := l.publisher.PublishSystem(hbEvent); err != nil {
					log.Printf("heartbeat publish error: %v", err)
				}
			}

			// Update status tracker for HTTP consumers
			if l.tracker != nil {
				l.updateTracker(packet, volts, warning, counts)
			}
		}
	}
}

func (l *loop) publishTimerEvent(eventType telemetry.EventType, t time.Time) {
	if err := l.publisher.Publish(telemetry.Event{
		Timestamp:    t,
		Type:         eventType,
		TimerMinutes: l.countdown.SelectedMinutes(),
	}); err != nil {
		log.Printf("publish error: %v", err)
	}
}

func (l *loop) updateTracker(packet channels.Packet, volts float64, warning bool, counts status.Counts) {
	l.tracker.Update(l.nav.Page(), l.nav.Cursor(), packet, *l.settings, volts, warning, l.countdown.Snapshot(), counts)
	if l.mqttStatus != nil {
		l.tracker.SetMQTTConnected(l.mqttStatus.IsConnected())
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
