// This file is part of 8088-bios.
//
// 8088-bios is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// 8088-bios is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with 8088-bios.  If not, see <https://www.gnu.org/licenses/>.

// Package pit emulates channel 0 of the Intel 8253 programmable interval
// timer. Only as much of the chip as the delay core touches is modelled:
// the free-running mode 3 counter, the counter-latch command and the
// low-then-high two-byte read sequence.
//
// Channel 0 is assumed to have been programmed for mode 3 (square wave)
// with a reload value of zero, which the 8253 treats as 65536. In mode 3
// the counter decrements by two on every input clock tick, which is why the
// effective counting rate is twice the input frequency.
package pit

import "fmt"

// PIT implements channel 0 of the 8253.
type PIT struct {
	// the current counter value. a value of zero reads as the full reload
	// value about to be reloaded, not as an expired counter
	Counter uint16

	// the programmed reload value. zero means 65536
	Reload uint16

	// a latched counter value waiting to be read. the 8253 ignores further
	// latch commands until both bytes of the current latch have been read
	latched bool
	latch   uint16

	// whether the next data read returns the high byte
	readHi bool
}

// NewPIT is the preferred method of initialisation of the PIT type. The
// channel begins free-running with the maximum reload value, the state the
// BIOS leaves it in after POST.
func NewPIT() *PIT {
	return &PIT{}
}

func (p *PIT) String() string {
	return fmt.Sprintf("counter=%#04x reload=%#04x latched=%v", p.Counter, p.Reload, p.latched)
}

// Step advances the channel by the given number of input clock ticks. The
// mode 3 counter decrements by two per tick, reloading through zero.
func (p *PIT) Step(ticks int) {
	if ticks <= 0 {
		return
	}

	period := uint32(p.Reload)
	if period == 0 {
		period = 0x10000
	}

	// position within the period rather than the counter value itself.
	// wrapping the position forward is simpler than wrapping a decrementing
	// counter backward
	pos := (period - uint32(p.Counter)) % period
	pos = (pos + uint32(ticks)*2) % period
	p.Counter = uint16((period - pos) % period)
}

// WriteCtrl handles a write to the 8253 control port. Only the channel 0
// latch command is honoured. Mode-setting control words are ignored: this
// emulation models a channel that has already been programmed and callers
// are expected not to reprogram it.
func (p *PIT) WriteCtrl(data uint8) {
	if data>>6 != 0 {
		return
	}
	if data&0x30 != 0 {
		return
	}
	if !p.latched {
		p.latch = p.Counter
		p.latched = true
		p.readHi = false
	}
}

// ReadData handles a read of the channel 0 data port. Reads alternate
// low byte then high byte. If a latch is pending the latched value is
// returned and the latch is released once both bytes have been read;
// otherwise the live counter is read directly.
func (p *PIT) ReadData() uint8 {
	v := p.Counter
	if p.latched {
		v = p.latch
	}

	if !p.readHi {
		p.readHi = true
		return uint8(v)
	}

	p.readHi = false
	p.latched = false
	return uint8(v >> 8)
}
