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

package test

import "testing"

type ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ExpectRange tests whether a value lies in the inclusive range [lo, hi].
// Useful for timing assertions where the expected value is a band rather
// than a point.
func ExpectRange[T ordered](t *testing.T, v T, lo T, hi T) bool {
	t.Helper()
	if v < lo || v > hi {
		t.Errorf("range test of type %T failed: '%v' is outside [%v, %v]", v, v, lo, hi)
		return false
	}
	return true
}
