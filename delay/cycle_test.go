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
	"testing"

	"github.com/shadow338/8088-bios/test"
)

// the inner loop runs exactly cyclePasses times per unit. a whitebox test:
// the spin counter is the only observable the strategy has
func TestCyclePasses(t *testing.T) {
	eng := NewCyclePoll()

	before := spin
	eng.Wait(100)
	test.ExpectEquality(t, spin-before, uint32(100*cyclePasses))

	before = spin
	eng.Wait(1)
	test.ExpectEquality(t, spin-before, uint32(cyclePasses))
}

// zero units perform no passes at all
func TestCycleZeroUnits(t *testing.T) {
	eng := NewCyclePoll()

	before := spin
	eng.Wait(0)
	test.ExpectEquality(t, spin-before, 0)
}
