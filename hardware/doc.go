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

// Package hardware assembles the emulated timing hardware of an 8088-class
// PC: the 8253 interval timer, the refresh toggle of the system control
// port and the interrupt enable flag, all driven from one CPU-cycle clock.
//
// The Machine type is not a PC emulator. It models exactly the state the
// delay package can observe through the port bus, advancing simulated time
// as a side effect of each port access. That is enough to exercise every
// path through the delay strategies, including counter wraparound and
// interrupt masking, with cycle-exact repeatability.
package hardware
