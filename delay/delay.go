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

// Engine is the contract shared by every delay strategy. Wait blocks the
// caller for approximately units * 15 microseconds. It never fails and
// never reports: on hardware that violates a strategy's preconditions it
// simply never returns.
type Engine interface {
	Wait(units uint16)
}

// InterruptGate is the machine's interrupt enable flag as the delay core
// manipulates it. Disable clears the flag and returns the state it had;
// Restore puts a previously returned state back. Restore must receive the
// value the matching Disable returned, never an unconditional true, so
// that a caller running with interrupts masked stays masked.
//
// On real hardware these are the CLI and STI instructions plus a PUSHF to
// remember the prior state. The emulated Machine in the hardware package
// implements the same discipline.
type InterruptGate interface {
	Disable() bool
	Restore(enabled bool)
}
