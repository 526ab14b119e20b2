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

// Package clocks defines the constant values that define the speed of the
// clocks in an 8088-class PC.
//
// Everything on the board is derived from the single 14.31818 MHz crystal:
// the 8284 clock generator divides it by three for the CPU clock and the
// motherboard divides it by twelve for the input clock of the 8253 timer.
//
// The DRAM refresh request fires every 72 CPU cycles, a little over 15
// microseconds at the reference clock speed. That period is the quantum of
// the delay primitive in the delay package.
package clocks

// Clock values in MHz.
const (
	Crystal = 14.31818
	CPU     = Crystal / 3
	PIT     = Crystal / 12
)

// PITHz is the input frequency of the 8253 in whole Hz. The integer form is
// used where tick budgets are computed in constant expressions.
const PITHz = 1_193_182

// Relationship of the derived clocks to the CPU clock, in CPU cycles.
const (
	// CPU cycles per tick of the 8253 input clock
	CyclesPerPITTick = 4

	// CPU cycles between DRAM refresh requests
	RefreshPeriod = 72

	// CPU cycles between transitions of the refresh toggle. the toggle
	// flips on every half period so one full low-high-low excursion takes
	// RefreshPeriod cycles
	RefreshHalfPeriod = RefreshPeriod / 2
)
