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

// Package monitor is a small interactive front-end to the emulated
// machine. The controlling terminal is placed in cbreak mode so single
// keypresses drive the monitor, in the manner of a hardware debug ROM.
//
// Commands:
//
//	d	run the delay engine for the profiled number of units
//	1	run the delay engine for a single unit
//	p	print the 8253 channel 0 state
//	m	print the machine state
//	l	print the tail of the central log
//	h	print this list of commands
//	q	quit (ctrl-c and ctrl-d also quit)
package monitor

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/term"

	"github.com/shadow338/8088-bios/delay"
	"github.com/shadow338/8088-bios/hardware"
	"github.com/shadow338/8088-bios/logger"
	"github.com/shadow338/8088-bios/platform"
)

// ASCII codes for the control keys that end a monitor session.
const (
	keyInterrupt = 3
	keyEndOfFile = 4
)

// Monitor is an interactive session against one emulated machine.
type Monitor struct {
	conf   platform.Config
	mch    *hardware.Machine
	eng    delay.Engine
	output io.Writer
}

// NewMonitor is the preferred method of initialisation of the Monitor
// type. The machine is built from the profile and the delay engine is
// whichever strategy was compiled in.
func NewMonitor(output io.Writer, conf platform.Config) *Monitor {
	mch := conf.NewMachine()
	return &Monitor{
		conf:   conf,
		mch:    mch,
		eng:    delay.New(mch, mch),
		output: output,
	}
}

// Run takes over the controlling terminal until the user quits. The
// terminal is restored to its previous state on every return path.
func (mon *Monitor) Run() error {
	t, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}
	defer func() {
		t.Restore()
		t.Close()
	}()

	fmt.Fprintf(mon.output, "8088 delay monitor (strategy: %s). h for help\n", delay.Strategy)

	buf := make([]byte, 1)
	for {
		_, err := t.Read(buf)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("monitor: %w", err)
		}

		switch buf[0] {
		case 'q', keyInterrupt, keyEndOfFile:
			fmt.Fprintln(mon.output, "quit")
			return nil

		case 'd':
			mon.wait(uint16(mon.conf.Run.Units))

		case '1':
			mon.wait(1)

		case 'p':
			fmt.Fprintf(mon.output, "%v\n", mon.mch.PIT)

		case 'm':
			fmt.Fprintf(mon.output, "%v\n", mon.mch)

		case 'l':
			logger.Tail(mon.output, 10)

		case 'h', '?':
			fmt.Fprint(mon.output, commandHelp)
		}
	}
}

func (mon *Monitor) wait(units uint16) {
	before := mon.mch.Cycles()
	mon.eng.Wait(units)
	consumed := mon.mch.Cycles() - before

	logger.Logf("monitor", "wait of %d units consumed %d cycles", units, consumed)
	fmt.Fprintf(mon.output, "waited %d units: %d simulated cycles\n", units, consumed)
}

const commandHelp = `d  wait for the profiled number of units
1  wait for a single unit
p  print 8253 channel 0 state
m  print machine state
l  print log tail
h  this help
q  quit
`

// Run builds a monitor from the profile and runs it on the controlling
// terminal.
func Run(conf platform.Config) error {
	return NewMonitor(os.Stdout, conf).Run()
}
