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

//go:build cyclepoll && !refreshpoll

package delay

import "github.com/shadow338/8088-bios/hardware/ports"

// Strategy names the delay strategy selected at build time.
const Strategy = "cyclepoll"

// New returns the delay engine selected at build time. The cyclepoll build
// is the last-resort strategy for hardware with no trustworthy timing
// source; both the bus and the irq gate go unused.
func New(bus ports.Bus, irq InterruptGate) Engine {
	return NewCyclePoll()
}
