package pcd8544

import (
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// frame is one byte as seen by the controller.
type frame struct {
	data bool // DC high when the byte was clocked
	b    byte
}

// event is one level change on a tapped pin.
type event struct {
	pin    string
	l      gpio.Level
	locked bool
}

// wire decodes the levels driven on the tapped pins the way the controller
// samples them: DIN on each rising CLK edge while CE is low.
type wire struct {
	levels map[string]gpio.Level
	events []event
	frames []frame

	cur byte
	n   int

	partial  int // bytes cut short by CE going high
	unlocked int // clock edges outside the critical section

	lock *countingLock
}

func (w *wire) out(pin string, l gpio.Level) {
	prev := w.levels[pin]
	w.levels[pin] = l
	w.events = append(w.events, event{pin: pin, l: l, locked: w.lock.held})

	switch pin {
	case "CLK":
		if l != gpio.High || prev != gpio.Low || w.levels["CE"] != gpio.Low {
			return
		}
		if !w.lock.held {
			w.unlocked++
		}
		w.cur <<= 1
		if w.levels["DIN"] == gpio.High {
			w.cur |= 1
		}
		if w.n++; w.n == 8 {
			w.frames = append(w.frames, frame{data: bool(w.levels["DC"]), b: w.cur})
			w.cur, w.n = 0, 0
		}
	case "CE":
		if l == gpio.High && w.n != 0 {
			w.partial++
			w.cur, w.n = 0, 0
		}
	}
}

func (w *wire) commands() []byte {
	var out []byte
	for _, f := range w.frames {
		if !f.data {
			out = append(out, f.b)
		}
	}
	return out
}

func (w *wire) data() []byte {
	var out []byte
	for _, f := range w.frames {
		if f.data {
			out = append(out, f.b)
		}
	}
	return out
}

func (w *wire) reset() {
	w.events = nil
	w.frames = nil
}

// tapPin is a gpiotest.Pin reporting every Out call to a wire. When err is
// set the level is left unchanged and err returned.
type tapPin struct {
	*gpiotest.Pin
	w   *wire
	err error
}

func (p *tapPin) Out(l gpio.Level) error {
	if p.err != nil {
		return p.err
	}
	p.w.out(p.N, l)
	return p.Pin.Out(l)
}

// countingLock is a sync.Locker that records its use.
type countingLock struct {
	held           bool
	locks, unlocks int
}

func (l *countingLock) Lock() {
	if l.held {
		panic("countingLock: already held")
	}
	l.held = true
	l.locks++
}

func (l *countingLock) Unlock() {
	if !l.held {
		panic("countingLock: not held")
	}
	l.held = false
	l.unlocks++
}

// rig is a Dev wired to tapped pins with fake delays.
type rig struct {
	dev    *Dev
	wire   *wire
	pins   map[string]*tapPin
	sleeps []time.Duration
	spins  []time.Duration
}

func newRig(t *testing.T, opts *Opts, withLED bool) *rig {
	t.Helper()
	r := &rig{
		wire: &wire{levels: map[string]gpio.Level{}, lock: &countingLock{}},
		pins: map[string]*tapPin{},
	}
	pin := func(name string) *tapPin {
		p := &tapPin{Pin: &gpiotest.Pin{N: name}, w: r.wire}
		r.pins[name] = p
		return p
	}
	p := Pins{
		DIN: pin("DIN"),
		CLK: pin("CLK"),
		DC:  pin("DC"),
		CE:  pin("CE"),
		RST: pin("RST"),
	}
	if withLED {
		p.LED = pin("LED")
	}

	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	o.Lock = r.wire.lock

	d, err := newDev(p, &o)
	if err != nil {
		t.Fatalf("newDev() error = %v", err)
	}
	d.sleep = func(d time.Duration) { r.sleeps = append(r.sleeps, d) }
	d.bus.spin = func(d time.Duration) { r.spins = append(r.spins, d) }
	r.dev = d
	return r
}

// pattern fills the framebuffer with a fixed non-trivial byte pattern.
func pattern(f *Framebuffer) {
	for i := range f.Bytes() {
		f.Bytes()[i] = byte(i*37 + 11)
	}
}
