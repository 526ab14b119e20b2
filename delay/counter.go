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

package delay

import (
	"github.com/shadow338/8088-bios/hardware/clocks"
	"github.com/shadow338/8088-bios/hardware/ports"
)

// TicksPerUnit is the effective 8253 tick budget of one 15 microsecond
// unit:
//
//	ceil(2 * 15 * PITHz / 1e6) = 36
//
// The factor of two is the mode 3 square-wave counting rate: the counter
// decrements by two per input clock tick, so the observable count moves at
// twice the 1.193182 MHz input frequency. Rounding up keeps a one-unit
// wait from undershooting its period.
const TicksPerUnit = (2*15*clocks.PITHz + 999_999) / 1_000_000

// CounterLatch times delay units by repeatedly latching and reading 8253
// channel 0 and accumulating the elapsed ticks between samples.
//
// Precondition: channel 0 is free-running in mode 3 with the maximum
// reload value, the state POST leaves it in. The strategy never programs
// or validates the channel; behaviour against a halted or reprogrammed
// channel is undefined and usually an indefinite hang.
type CounterLatch struct {
	bus ports.Bus
	irq InterruptGate
}

// NewCounterLatch is the preferred method of initialisation of the
// CounterLatch type.
func NewCounterLatch(bus ports.Bus, irq InterruptGate) *CounterLatch {
	return &CounterLatch{bus: bus, irq: irq}
}

// latchRead freezes channel 0 and reads the two counter bytes. The
// interrupt enable flag is saved, cleared and restored around the sequence
// so that an interrupt cannot split the byte pair; restoration is to the
// saved state, preserving the caller's masking whatever it was.
func (c *CounterLatch) latchRead() uint16 {
	prev := c.irq.Disable()
	defer c.irq.Restore(prev)

	c.bus.Out(ports.TimerCtrl, ports.LatchTimer0)
	lo := c.bus.In(ports.Timer0)
	hi := c.bus.In(ports.Timer0)
	return uint16(hi)<<8 | uint16(lo)
}

// Wait blocks until units worth of raw timer ticks have elapsed.
// Implements the Engine interface.
//
// The countdown is held in a 32-bit signed accumulator. The widest budget,
// 65535 units, is 65535*36 = 2359260 ticks and fits comfortably; the loop
// terminates on the transition from non-negative to negative, never
// before.
func (c *CounterLatch) Wait(units uint16) {
	remaining := int32(uint32(units) * TicksPerUnit)

	prev := c.latchRead()
	for remaining >= 0 {
		cur := c.latchRead()

		// the counter only ever decreases between samples, reloading
		// through zero, so the 16-bit wrapping difference is the true
		// elapsed tick count provided no more than one full period passes
		// between samples. the polling loop is far faster than the 55ms
		// period so the bound holds with room to spare
		elapsed := prev - cur
		prev = cur

		remaining -= int32(elapsed)
	}
}
