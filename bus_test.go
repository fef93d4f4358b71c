package pcd8544

import (
	"testing"
)

func TestBusBitOrder(t *testing.T) {
	tests := []struct {
		name    string
		lsbData bool
		data    bool
		in      byte
		want    frame
	}{
		{"command msb first", false, false, 0x21, frame{false, 0x21}},
		{"data msb first", false, true, 0x01, frame{true, 0x01}},
		{"data lsb first", true, true, 0x01, frame{true, 0x80}},
		{"data lsb first asymmetric", true, true, 0x3A, frame{true, 0x5C}},
		{"command ignores lsb", true, false, 0x21, frame{false, 0x21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, nil, false)
			r.dev.bus.lsbData = tt.lsbData

			var err error
			if tt.data {
				err = r.dev.bus.writeData(tt.in)
			} else {
				err = r.dev.bus.writeCommand(tt.in)
			}
			if err != nil {
				t.Fatalf("write error = %v", err)
			}
			if len(r.wire.frames) != 1 {
				t.Fatalf("frames = %d, want 1", len(r.wire.frames))
			}
			if got := r.wire.frames[0]; got != tt.want {
				t.Errorf("frame = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBusFraming(t *testing.T) {
	r := newRig(t, nil, false)
	if err := r.dev.bus.writeCommand(0xFF); err != nil {
		t.Fatalf("writeCommand() error = %v", err)
	}

	ev := r.wire.events
	if len(ev) == 0 {
		t.Fatal("no pin events")
	}
	if ev[0].pin != "CE" || ev[0].l {
		t.Fatalf("first event = %+v, want CE low", ev[0])
	}
	last := ev[len(ev)-1]
	if last.pin != "CE" || !last.l {
		t.Errorf("last event = %+v, want CE high", last)
	}
	rising := 0
	for _, e := range ev {
		if !e.locked {
			t.Fatalf("event %+v outside critical section", e)
		}
		if e.pin == "CLK" && e.l {
			rising++
		}
	}
	if rising != 8 {
		t.Errorf("clock pulses = %d, want 8", rising)
	}
	if r.wire.levels["CLK"] {
		t.Error("CLK left high")
	}
}

func TestBusLockBalanced(t *testing.T) {
	r := newRig(t, nil, false)
	for i := 0; i < 10; i++ {
		if err := r.dev.bus.writeData(byte(i)); err != nil {
			t.Fatalf("writeData() error = %v", err)
		}
	}
	l := r.wire.lock
	if l.held || l.locks != 10 || l.unlocks != 10 {
		t.Errorf("lock held=%v locks=%d unlocks=%d, want 10 balanced", l.held, l.locks, l.unlocks)
	}
}
