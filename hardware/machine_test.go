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

package hardware_test

import (
	"testing"

	"github.com/shadow338/8088-bios/hardware"
	"github.com/shadow338/8088-bios/hardware/clocks"
	"github.com/shadow338/8088-bios/hardware/ports"
	"github.com/shadow338/8088-bios/test"
)

// every port access charges IOCycles and unmapped ports float high
func TestPortAccessCost(t *testing.T) {
	m := hardware.NewMachine()

	v := m.In(0x80)
	test.ExpectEquality(t, v, 0xff)
	test.ExpectEquality(t, m.Cycles(), uint64(m.IOCycles))

	m.Out(0x80, 0x00)
	test.ExpectEquality(t, m.Cycles(), uint64(2*m.IOCycles))
}

// the refresh toggle flips every half period
func TestRefreshToggle(t *testing.T) {
	m := hardware.NewMachine()

	m.Cycle(clocks.RefreshPeriod)
	test.ExpectEquality(t, m.Sys.Edges(), 2)

	m.Cycle(clocks.RefreshPeriod * 9)
	test.ExpectEquality(t, m.Sys.Edges(), 20)
}

// the toggle is observable through the port bus. a fresh machine reads the
// bit low; one half period later it reads high
func TestRefreshThroughBus(t *testing.T) {
	m := hardware.NewMachine()

	// the read itself advances the machine by IOCycles, not enough to
	// cross the first half period
	v := m.In(ports.SysCtrl)
	test.ExpectEquality(t, v&ports.RefreshToggle, 0)

	m.Cycle(clocks.RefreshHalfPeriod)
	v = m.In(ports.SysCtrl)
	test.ExpectEquality(t, v&ports.RefreshToggle, ports.RefreshToggle)
}

// the PIT sees one input tick per CyclesPerPITTick CPU cycles
func TestPITStepRatio(t *testing.T) {
	m := hardware.NewMachine()

	m.Cycle(clocks.CyclesPerPITTick * 10)

	// mode 3: ten input ticks decrement the counter by twenty
	test.ExpectEquality(t, m.PIT.Counter, 0x10000-20)
}

// Disable returns the prior state and Restore puts an arbitrary saved
// state back
func TestInterruptGate(t *testing.T) {
	m := hardware.NewMachine()
	test.ExpectEquality(t, m.InterruptsEnabled(), true)

	prev := m.Disable()
	test.ExpectEquality(t, prev, true)
	test.ExpectEquality(t, m.InterruptsEnabled(), false)

	// disabling when already disabled returns false
	prev = m.Disable()
	test.ExpectEquality(t, prev, false)

	m.Restore(true)
	test.ExpectEquality(t, m.InterruptsEnabled(), true)

	m.Restore(false)
	test.ExpectEquality(t, m.InterruptsEnabled(), false)
}
