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

// Package ports defines the I/O port map of the 8088-class PC as far as the
// delay core is concerned, and the Bus interface through which those ports
// are reached.
//
// The Bus is deliberately the thinnest possible slice of a machine: an
// 8-bit IN and an 8-bit OUT. The delay strategies are written against this
// interface only and have no other view of the machine they are timing
// against. On real hardware the implementation is a pair of IN/OUT
// instructions; in this repository it is the emulated Machine in the
// hardware package.
package ports

// Bus is an 8-bit I/O port bus.
type Bus interface {
	In(port uint16) uint8
	Out(port uint16, data uint8)
}

// Addresses of the ports read and written by the delay core.
const (
	// 8253 programmable interval timer
	Timer0    = 0x40
	Timer1    = 0x41
	Timer2    = 0x42
	TimerCtrl = 0x43

	// system control port on the 8255. bit 4 echoes the DRAM refresh
	// request line
	SysCtrl = 0x61
)

// Bit masks and control words.
const (
	// mask for the refresh toggle in the SysCtrl port
	RefreshToggle = 0x10

	// control word that latches channel 0 of the 8253 for reading. bits 7-6
	// select the channel, bits 5-4 of zero mean latch
	LatchTimer0 = 0x00
)
