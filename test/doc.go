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

// Package test contains helper functions to remove common boilerplate and
// make testing easier.
//
// The Expect functions record a test error and continue; the Demand
// functions are fatal. Demand is the right choice when later assertions
// depend on the demanded value, for instance a tick budget used to derive
// expected cycle counts.
//
// ExpectSuccess and ExpectFailure interpret their argument by type: a bool
// succeeds when true, an error succeeds when nil. The nil interface value
// counts as success, which matches how errors are returned in practice.
package test
