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

package hardware

import (
	"fmt"

	"github.com/shadow338/8088-bios/hardware/clocks"
	"github.com/shadow338/8088-bios/hardware/pit"
	"github.com/shadow338/8088-bios/hardware/ports"
	"github.com/shadow338/8088-bios/hardware/sysctrl"
)

// Machine assembles the emulated chips behind a single port bus and drives
// them from one CPU-cycle clock. Time only advances when the bus is
// touched: every IN and OUT charges IOCycles CPU cycles before the access
// is serviced, which is what makes a polling loop running against the
// Machine elapse simulated time the way it would on silicon.
//
// Machine implements ports.Bus and the delay package's InterruptGate.
type Machine struct {
	PIT *pit.PIT
	Sys *sysctrl.SysCtrl

	// CPU cycles charged for each port access
	IOCycles int

	// CPU cycles between refresh toggle transitions
	RefreshHalf int

	// the interrupt enable flag. the machine has no interrupt sources; the
	// flag exists so that save/disable/restore sequences can be observed
	intEnabled bool

	// cycle accounting. pitSeen and togglesSeen record how much of the
	// cycle count has already been delivered to the chips
	cycles      uint64
	pitSeen     uint64
	togglesSeen uint64
}

// NewMachine is the preferred method of initialisation of the Machine type.
// The machine powers up with timings from the clocks package and with
// interrupts enabled.
func NewMachine() *Machine {
	return &Machine{
		PIT:         pit.NewPIT(),
		Sys:         sysctrl.NewSysCtrl(),
		IOCycles:    12,
		RefreshHalf: clocks.RefreshHalfPeriod,
		intEnabled:  true,
	}
}

func (m *Machine) String() string {
	return fmt.Sprintf("cycles=%d if=%v [%v] [%v]", m.cycles, m.intEnabled, m.PIT, m.Sys)
}

// Cycle advances the machine by the given number of CPU cycles, delivering
// input clock ticks to the PIT and toggle transitions to the system control
// port as their periods elapse.
func (m *Machine) Cycle(n int) {
	if n <= 0 {
		return
	}
	m.cycles += uint64(n)

	pitDue := m.cycles / clocks.CyclesPerPITTick
	m.PIT.Step(int(pitDue - m.pitSeen))
	m.pitSeen = pitDue

	togglesDue := m.cycles / uint64(m.RefreshHalf)
	for m.togglesSeen < togglesDue {
		m.Sys.Toggle()
		m.togglesSeen++
	}
}

// In reads a port. Implements ports.Bus.
func (m *Machine) In(port uint16) uint8 {
	m.Cycle(m.IOCycles)

	switch port {
	case ports.Timer0:
		return m.PIT.ReadData()
	case ports.SysCtrl:
		return m.Sys.Read()
	}

	// unmapped ports float high on the ISA bus
	return 0xff
}

// Out writes a port. Implements ports.Bus.
func (m *Machine) Out(port uint16, data uint8) {
	m.Cycle(m.IOCycles)

	switch port {
	case ports.TimerCtrl:
		m.PIT.WriteCtrl(data)
	}
}

// Disable clears the interrupt enable flag, returning its previous state.
// Implements the delay package's InterruptGate.
func (m *Machine) Disable() bool {
	prev := m.intEnabled
	m.intEnabled = false
	return prev
}

// Restore sets the interrupt enable flag to a state previously returned by
// Disable. Implements the delay package's InterruptGate.
func (m *Machine) Restore(enabled bool) {
	m.intEnabled = enabled
}

// InterruptsEnabled returns the state of the interrupt enable flag.
func (m *Machine) InterruptsEnabled() bool {
	return m.intEnabled
}

// Cycles returns the number of CPU cycles elapsed since power up.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}
