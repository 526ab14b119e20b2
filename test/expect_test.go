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

package test_test

import (
	"errors"
	"testing"

	"github.com/shadow338/8088-bios/test"
)

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("an error"))

	var err error
	test.ExpectSuccess(t, err)
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, 100, 100)
	test.ExpectEquality(t, "delay", "delay")
	test.ExpectInequality(t, uint16(0), uint16(0xffff))
	test.DemandEquality(t, 15, 15)
}

func TestRange(t *testing.T) {
	test.ExpectRange(t, 72, 72, 108)
	test.ExpectRange(t, 108, 72, 108)
	test.ExpectRange(t, 90.0, 72.0, 108.0)
}
