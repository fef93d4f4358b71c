package pcd8544

import (
	"fmt"
	"math/bits"
	"runtime"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3/cpu"
)

// bus bit-bangs bytes to the controller over DIN, CLK, DC and CE.
//
// The controller samples DIN on each rising CLK edge and has no other framing
// signal, so a byte must never be interrupted between its first and last edge.
// Every byte is sent while holding lock.
type bus struct {
	din gpio.PinOut // Serial data
	clk gpio.PinOut // Serial clock
	dc  gpio.PinOut // Low for commands, high for data
	ce  gpio.PinOut // Chip enable, active low

	lock       sync.Locker
	halfPeriod time.Duration
	spin       func(time.Duration)

	// lsbData sends data bytes least significant bit first. Used for 180°
	// mounting together with a reversed framebuffer traversal.
	lsbData bool
}

func newBus(p Pins, lock sync.Locker, hz physic.Frequency, lsbData bool) *bus {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &bus{
		din:        p.DIN,
		clk:        p.CLK,
		dc:         p.DC,
		ce:         p.CE,
		lock:       lock,
		halfPeriod: hz.Period() / 2,
		spin:       cpu.Nanospin,
		lsbData:    lsbData,
	}
}

// writeCommand sends a command byte, always MSB first.
func (b *bus) writeCommand(cmd byte) error {
	if err := b.write(cmd, gpio.Low); err != nil {
		return fmt.Errorf("pcd8544: command 0x%02X: %w", cmd, err)
	}
	return nil
}

// writeData sends a byte destined for display RAM.
func (b *bus) writeData(data byte) error {
	if b.lsbData {
		data = bits.Reverse8(data)
	}
	if err := b.write(data, gpio.High); err != nil {
		return fmt.Errorf("pcd8544: data: %w", err)
	}
	return nil
}

// write shifts v out MSB first with DC at mode.
//
// A started byte is always finished: a failing pin does not stop the
// remaining edges nor the release of CE. The first error is returned.
func (b *bus) write(v byte, mode gpio.Level) (err error) {
	out := func(p gpio.PinOut, l gpio.Level) {
		if e := p.Out(l); e != nil && err == nil {
			err = e
		}
	}

	b.enter()
	defer b.leave()

	out(b.ce, gpio.Low)
	out(b.dc, mode)
	out(b.clk, gpio.Low)
	for i := 0; i < 8; i++ {
		out(b.din, v&0x80 != 0)
		out(b.clk, gpio.High)
		b.wait()
		out(b.clk, gpio.Low)
		b.wait()
		v <<= 1
	}
	out(b.ce, gpio.High)
	return err
}

// enter starts a critical section. The calling goroutine stays on its OS
// thread until leave.
func (b *bus) enter() {
	runtime.LockOSThread()
	b.lock.Lock()
}

func (b *bus) leave() {
	b.lock.Unlock()
	runtime.UnlockOSThread()
}

func (b *bus) wait() {
	if b.halfPeriod > 0 {
		b.spin(b.halfPeriod)
	}
}
