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

// cyclePasses is the number of inner-loop passes per unit. The value was
// chosen empirically against a 4.77 MHz 8088 and is pinned to that part:
// on any other clock the unit length scales with CPU speed and there is no
// calibration routine to correct it. Integrators retargeting this strategy
// must re-measure the constant, not compute it.
const cyclePasses = 13

// spin is the loop body's store target. A package variable rather than a
// local so the loop cannot be optimised away.
var spin uint32

// CyclePoll approximates delay units with a fixed number of trivial
// instructions per unit. It reads no hardware at all and its wall-clock
// accuracy is an uncorrected function of CPU clock frequency. It exists
// for targets where neither the timer chip nor the refresh toggle can be
// trusted, and for no other reason.
type CyclePoll struct{}

// NewCyclePoll is the preferred method of initialisation of the CyclePoll
// type.
func NewCyclePoll() *CyclePoll {
	return &CyclePoll{}
}

// Wait performs units repetitions of the calibrated inner loop. Implements
// the Engine interface.
func (*CyclePoll) Wait(units uint16) {
	for u := uint16(0); u < units; u++ {
		for p := 0; p < cyclePasses; p++ {
			spin++
		}
	}
}
