//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/st7789"

	"obdash/dash/config"
	"obdash/dash/input"
)

// Board wiring. The panel hangs off SPI0; the buttons are active-low with
// internal pull-ups; the blue channel of the status LED is the heartbeat.
const (
	pinSPISCK = machine.GP18
	pinSPITX  = machine.GP19
	pinLCDDC  = machine.GP16
	pinLCDCS  = machine.GP17
	pinLCDBL  = machine.GP20

	pinLEDR = machine.GP26
	pinLEDG = machine.GP27
	pinLEDB = machine.GP28

	pinBtnA = machine.GP12
	pinBtnB = machine.GP13
	pinBtnX = machine.GP14
	pinBtnY = machine.GP15

	spiFreq  = 62_500_000
	uartBaud = 115200
)

// Board owns the configured peripherals.
type Board struct {
	display st7789.Device
	uart    *machine.UART
	led     *heartbeatLED
	btnA    machine.Pin
	btnB    machine.Pin
	btnX    machine.Pin
	btnY    machine.Pin
}

// NewBoard brings up the panel, the UART console, the LED and the buttons.
func NewBoard() *Board {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: uartBaud,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	machine.SPI0.Configure(machine.SPIConfig{
		SCK:       pinSPISCK,
		SDO:       pinSPITX,
		Frequency: spiFreq,
		Mode:      3,
	})
	display := st7789.New(machine.SPI0, machine.NoPin, pinLCDDC, pinLCDCS, pinLCDBL)
	display.Configure(st7789.Config{
		Rotation: st7789.ROTATION_90,
		Height:   320,
	})

	// Red and green channels stay off; the pins are active low.
	for _, p := range []machine.Pin{pinLEDR, pinLEDG, pinLEDB} {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}

	for _, p := range []machine.Pin{pinBtnA, pinBtnB, pinBtnX, pinBtnY} {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	return &Board{
		display: display,
		uart:    uart,
		led:     &heartbeatLED{pin: pinLEDB},
		btnA:    pinBtnA,
		btnB:    pinBtnB,
		btnX:    pinBtnX,
		btnY:    pinBtnY,
	}
}

// Flush streams one big-endian RGB565 frame to the panel.
func (b *Board) Flush(buf []byte) error {
	return b.display.DrawRGBBitmap8(0, 0, buf, config.ScreenWidth, config.ScreenHeight)
}

// Levels samples the four button lines, true meaning held.
func (b *Board) Levels() input.Levels {
	return input.Levels{
		A: !b.btnA.Get(),
		B: !b.btnB.Get(),
		X: !b.btnX.Get(),
		Y: !b.btnY.Get(),
	}
}

// Logger returns the UART console.
func (b *Board) Logger() Logger { return &uartLogger{uart: b.uart} }

// UART exposes the console port; its receive side carries the telemetry
// stream.
func (b *Board) UART() *machine.UART { return b.uart }

// LED returns the heartbeat output.
func (b *Board) LED() *heartbeatLED { return b.led }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// heartbeatLED drives one active-low RGB channel.
type heartbeatLED struct {
	pin machine.Pin
}

func (l *heartbeatLED) High() { l.pin.Low() }
func (l *heartbeatLED) Low()  { l.pin.High() }
