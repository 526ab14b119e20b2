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

package delay_test

import (
	"testing"

	"github.com/shadow338/8088-bios/delay"
	"github.com/shadow338/8088-bios/hardware"
	"github.com/shadow338/8088-bios/hardware/clocks"
	"github.com/shadow338/8088-bios/test"
)

// ten units consume exactly twenty toggle transitions when the wait
// begins aligned with the start of a period
func TestRefreshEdgeCount(t *testing.T) {
	m := hardware.NewMachine()
	eng := delay.NewRefreshPoll(m)

	eng.Wait(10)

	test.ExpectEquality(t, m.Sys.Edges(), 20)
	test.ExpectEquality(t, m.Cycles(), uint64(10*clocks.RefreshPeriod))
}

// zero units return immediately with no port access at all
func TestRefreshZeroUnits(t *testing.T) {
	m := hardware.NewMachine()
	eng := delay.NewRefreshPoll(m)

	eng.Wait(0)

	test.ExpectEquality(t, m.Cycles(), 0)
	test.ExpectEquality(t, m.Sys.Edges(), 0)
}

// a wait starting mid-period pays at most half a period of phase
// synchronisation on top of the requested time
func TestRefreshUnalignedStart(t *testing.T) {
	m := hardware.NewMachine()
	eng := delay.NewRefreshPoll(m)

	// advance into the active half of a period
	m.Cycle(40)
	before := m.Cycles()

	eng.Wait(1)

	consumed := m.Cycles() - before
	test.ExpectRange(t, consumed, clocks.RefreshPeriod, clocks.RefreshPeriod+clocks.RefreshHalfPeriod)
}

// elapsed time scales linearly with the unit count
func TestRefreshLinearity(t *testing.T) {
	for _, units := range []uint16{1, 2, 7, 100} {
		m := hardware.NewMachine()
		eng := delay.NewRefreshPoll(m)

		eng.Wait(units)

		test.ExpectEquality(t, m.Sys.Edges(), uint64(units)*2)
		test.ExpectEquality(t, m.Cycles(), uint64(units)*clocks.RefreshPeriod)
	}
}
