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

// Package sysctrl emulates the slice of the system control port that the
// delay core reads: the refresh toggle, a bit that flips on every DRAM
// refresh request. Nothing else behind port 61h is modelled.
package sysctrl

import (
	"fmt"

	"github.com/shadow338/8088-bios/hardware/ports"
)

// SysCtrl is the refresh-toggle portion of the system control port.
type SysCtrl struct {
	toggle bool

	// running count of toggle transitions. not something real hardware
	// exposes but invaluable for instrumentation and testing
	edges uint64
}

// NewSysCtrl is the preferred method of initialisation of the SysCtrl type.
// The toggle begins in the low state.
func NewSysCtrl() *SysCtrl {
	return &SysCtrl{}
}

func (s *SysCtrl) String() string {
	return fmt.Sprintf("refresh=%v edges=%d", s.toggle, s.edges)
}

// Toggle flips the refresh bit. Called by the machine once per refresh half
// period.
func (s *SysCtrl) Toggle() {
	s.toggle = !s.toggle
	s.edges++
}

// Read returns the port value. Bits other than the refresh toggle read as
// zero.
func (s *SysCtrl) Read() uint8 {
	if s.toggle {
		return ports.RefreshToggle
	}
	return 0x00
}

// Edges returns the number of toggle transitions since creation.
func (s *SysCtrl) Edges() uint64 {
	return s.edges
}
