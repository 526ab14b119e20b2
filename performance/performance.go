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

// Package performance measures the compiled-in delay strategy against the
// emulated machine: how many simulated cycles each call consumes compared
// with the nominal budget, and how quickly the host gets through the
// emulation. Optionally writes pprof profiles of the run.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/shadow338/8088-bios/delay"
	"github.com/shadow338/8088-bios/hardware/clocks"
	"github.com/shadow338/8088-bios/logger"
	"github.com/shadow338/8088-bios/platform"
)

// Check runs the delay engine per the run parameters in the profile and
// writes a summary of timing accuracy to output.
func Check(output io.Writer, profile Profile, conf platform.Config) error {
	m := conf.NewMachine()
	eng := delay.New(m, m)

	units := uint16(conf.Run.Units)
	repeats := conf.Run.Repeats

	logger.Logf("performance", "strategy %s: %d repeats of %d units", delay.Strategy, repeats, units)

	var consumed uint64

	start := time.Now()
	err := cpuProfile(profile&ProfileCPU == ProfileCPU, "cpu.profile", func() error {
		for i := 0; i < repeats; i++ {
			before := m.Cycles()
			eng.Wait(units)
			consumed += m.Cycles() - before
		}
		return nil
	})
	if err != nil {
		return err
	}
	hostTime := time.Since(start)

	nominal := uint64(units) * clocks.RefreshPeriod * uint64(repeats)

	fmt.Fprintf(output, "strategy: %s\n", delay.Strategy)
	fmt.Fprintf(output, "%d calls of %d units in %s of host time\n", repeats, units, hostTime.Round(time.Microsecond))

	if consumed == 0 {
		// the cyclepoll strategy never touches the bus so the machine
		// clock does not move. there is nothing to compare
		fmt.Fprintf(output, "no simulated cycles consumed (strategy does not poll the machine)\n")
		return nil
	}

	if nominal == 0 {
		fmt.Fprintf(output, "simulated cycles: %d consumed (no nominal budget for zero units)\n", consumed)
	} else {
		fmt.Fprintf(output, "simulated cycles: %d consumed, %d nominal (%+0.2f%%)\n",
			consumed, nominal,
			100*(float64(consumed)-float64(nominal))/float64(nominal),
		)
	}

	return memProfile(profile&ProfileMem == ProfileMem, "mem.profile")
}
