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

// Package delay implements the BIOS busy-wait delay primitive: block the
// caller for a whole number of 15 microsecond units, timed entirely by
// polling raw hardware state over the port bus. No interrupts, no RTC, no
// operating system clock.
//
// Three strategies implement the contract and exactly one is compiled in,
// selected at build time:
//
//	(default)   CounterLatch  latch and re-read 8253 channel 0
//	refreshpoll RefreshPoll   count transitions of the refresh toggle
//	cyclepoll   CyclePoll     a fixed instruction count per unit
//
// The build tags are mutually exclusive, in the way a timing source is
// chosen per target in agucova/tacet or CWBudde/algo-fft. The New()
// function and the Strategy constant are bound to whichever strategy the
// build selected. There is deliberately no runtime detection or switching:
// the integrator knows the target hardware, the code does not.
//
// For the two hardware-backed strategies the elapsed time for Wait(n) falls
// within one unit of n times the hardware period. CyclePoll makes no such
// promise: its accuracy is a direct function of CPU clock speed and it is
// only for targets where neither the timer chip nor the refresh toggle can
// be trusted.
//
// There is no error channel anywhere in this package. A call either
// returns after the requested time or, if the timing hardware is not being
// driven as its precondition requires, never returns at all. Hanging on
// misconfigured hardware is the documented contract, not a defect: the
// strategies perform no self-diagnosis and callers of the original BIOS
// routine had no status to check.
package delay
