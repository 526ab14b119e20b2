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

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/shadow338/8088-bios/delay"
	"github.com/shadow338/8088-bios/logger"
	"github.com/shadow338/8088-bios/monitor"
	"github.com/shadow338/8088-bios/performance"
	"github.com/shadow338/8088-bios/platform"
	"github.com/shadow338/8088-bios/statsview"
	"github.com/shadow338/8088-bios/version"
)

const usageModes = "available modes: RUN, MONITOR, PERFORMANCE, VERSION"

func main() {
	os.Exit(launch(os.Args[1:]))
}

func launch(args []string) int {
	mode := "RUN"
	if len(args) > 0 {
		mode = strings.ToUpper(args[0])
		args = args[1:]
	}

	var err error

	switch mode {
	case "RUN":
		err = run(args)
	case "MONITOR":
		err = monitorMode(args)
	case "PERFORMANCE":
		err = performanceMode(args)
	case "VERSION":
		fmt.Printf("bios8088 %s (strategy: %s)\n", version.Version, delay.Strategy)
	case "HELP", "-HELP", "--HELP", "-H":
		fmt.Println(usageModes)
	default:
		fmt.Fprintf(os.Stderr, "unrecognised mode (%s)\n%s\n", mode, usageModes)
		return 10
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		return 20
	}

	return 0
}

// loadProfile handles the flags common to every mode: the platform profile
// and log echoing.
func loadProfile(md *flag.FlagSet, args []string) (platform.Config, error) {
	profile := md.String("profile", "", "path to platform profile (empty for the reference machine)")
	log := md.Bool("log", false, "echo log entries to stderr")

	if err := md.Parse(args); err != nil {
		return platform.Config{}, err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	return platform.Load(*profile)
}

func run(args []string) error {
	md := flag.NewFlagSet("run", flag.ContinueOnError)
	units := md.Int("units", -1, "units to wait (overrides profile)")

	conf, err := loadProfile(md, args)
	if err != nil {
		return err
	}
	if *units >= 0 {
		conf.Run.Units = *units
		if err := conf.Validate(); err != nil {
			return err
		}
	}

	m := conf.NewMachine()
	eng := delay.New(m, m)

	before := m.Cycles()
	eng.Wait(uint16(conf.Run.Units))
	consumed := m.Cycles() - before

	fmt.Printf("strategy %s: waited %d units, %d simulated cycles\n", delay.Strategy, conf.Run.Units, consumed)
	return nil
}

func monitorMode(args []string) error {
	md := flag.NewFlagSet("monitor", flag.ContinueOnError)

	conf, err := loadProfile(md, args)
	if err != nil {
		return err
	}

	return monitor.Run(conf)
}

func performanceMode(args []string) error {
	md := flag.NewFlagSet("performance", flag.ContinueOnError)
	profiling := md.String("profile", "none", "run profiler (cpu, mem, all, none)")
	stats := md.Bool("statsview", false, "run statsview server (requires the statsview build tag)")
	profPath := md.String("platform", "", "path to platform profile (empty for the reference machine)")
	log := md.Bool("log", false, "echo log entries to stderr")

	if err := md.Parse(args); err != nil {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	prf, err := performance.ParseProfile(*profiling)
	if err != nil {
		return err
	}

	conf, err := platform.Load(*profPath)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview is not available in this build (rebuild with the statsview tag)")
		}
		statsview.Launch(os.Stdout)
	}

	return performance.Check(os.Stdout, prf, conf)
}
