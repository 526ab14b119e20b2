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

import "github.com/shadow338/8088-bios/hardware/ports"

// RefreshPoll times delay units by watching the refresh toggle in the
// system control port. The bit flips on every DRAM refresh request, twice
// per 15 microsecond unit, so one unit is one full low-high-low excursion
// of the bit.
//
// Precondition: the refresh circuitry is running and actually driving the
// toggle. A machine with refresh disabled or the port repurposed leaves
// Wait spinning forever.
type RefreshPoll struct {
	bus ports.Bus
}

// NewRefreshPoll is the preferred method of initialisation of the
// RefreshPoll type.
func NewRefreshPoll(bus ports.Bus) *RefreshPoll {
	return &RefreshPoll{bus: bus}
}

func (r *RefreshPoll) sample() bool {
	return r.bus.In(ports.SysCtrl)&ports.RefreshToggle != 0
}

// Wait blocks until units full excursions of the refresh toggle have been
// observed. Implements the Engine interface.
func (r *RefreshPoll) Wait(units uint16) {
	// the zero check must come first. a decrement-then-test loop would wrap
	// the count to 65535 and spin for the best part of a second
	if units == 0 {
		return
	}

	// synchronise to a known phase before counting
	for r.sample() {
	}

	// each iteration consumes exactly two toggle transitions: the rise into
	// the active half of the period and the fall out of it. counting both
	// halves is what keeps the per-unit calibration honest
	for units > 0 {
		for !r.sample() {
		}
		for r.sample() {
		}
		units--
	}
}
