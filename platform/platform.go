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

// Package platform loads the profile describing the emulated machine and
// the run parameters of the delay lab. Profiles are yaml files; omitted
// fields take the reference-machine defaults so an empty file is a valid
// profile of the stock 4.77 MHz board.
//
// Note that the delay strategy is not a profile field. Strategy selection
// is a build-time decision made with build tags; a configuration file
// cannot change it.
package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shadow338/8088-bios/hardware"
	"github.com/shadow338/8088-bios/hardware/clocks"
)

type Config struct {
	Machine MachineConfig `yaml:"machine"`
	Run     RunConfig     `yaml:"run"`
}

type MachineConfig struct {
	// CPU cycles charged per port access
	IOCycles int `yaml:"io_cycles"`

	// CPU cycles between refresh toggle transitions
	RefreshHalfCycles int `yaml:"refresh_half_cycles"`
}

type RunConfig struct {
	// number of 15us units per delay call
	Units int `yaml:"units"`

	// number of delay calls per run
	Repeats int `yaml:"repeats"`
}

// Default returns the profile of the reference machine.
func Default() Config {
	return Config{
		Machine: MachineConfig{
			IOCycles:          12,
			RefreshHalfCycles: clocks.RefreshHalfPeriod,
		},
		Run: RunConfig{
			Units:   100,
			Repeats: 1,
		},
	}
}

// Load reads a profile from the named yaml file, applies defaults to
// omitted fields and validates the result. An empty path returns the
// default profile.
func Load(path string) (Config, error) {
	conf := Default()

	if path == "" {
		return conf, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("platform: %w", err)
	}

	if err := yaml.Unmarshal(b, &conf); err != nil {
		return Config{}, fmt.Errorf("platform: %s: %w", path, err)
	}

	normalize(&conf)

	if err := conf.Validate(); err != nil {
		return Config{}, err
	}

	return conf, nil
}

// normalize replaces zero values with defaults. A yaml file that omits a
// field leaves the zero value behind, which is never a meaningful setting
// for any of these fields.
func normalize(conf *Config) {
	def := Default()
	if conf.Machine.IOCycles == 0 {
		conf.Machine.IOCycles = def.Machine.IOCycles
	}
	if conf.Machine.RefreshHalfCycles == 0 {
		conf.Machine.RefreshHalfCycles = def.Machine.RefreshHalfCycles
	}
	if conf.Run.Units == 0 {
		conf.Run.Units = def.Run.Units
	}
	if conf.Run.Repeats == 0 {
		conf.Run.Repeats = def.Run.Repeats
	}
}

// Validate checks profile correctness. It does not mutate the profile.
func (conf Config) Validate() error {
	if conf.Machine.IOCycles < 1 {
		return fmt.Errorf("platform: io_cycles must be positive (is %d)", conf.Machine.IOCycles)
	}
	if conf.Machine.RefreshHalfCycles < 1 {
		return fmt.Errorf("platform: refresh_half_cycles must be positive (is %d)", conf.Machine.RefreshHalfCycles)
	}

	// the counter-latch strategy requires that no more than one full
	// counter period passes between samples. the sample interval is three
	// port accesses
	if conf.Machine.IOCycles*3 >= 0x10000/2*clocks.CyclesPerPITTick {
		return fmt.Errorf("platform: io_cycles of %d makes port polling slower than the timer period", conf.Machine.IOCycles)
	}

	if conf.Run.Units < 0 || conf.Run.Units > 0xffff {
		return fmt.Errorf("platform: units must be in the range 0 to 65535 (is %d)", conf.Run.Units)
	}
	if conf.Run.Repeats < 1 {
		return fmt.Errorf("platform: repeats must be positive (is %d)", conf.Run.Repeats)
	}

	return nil
}

// NewMachine builds an emulated machine configured by the profile.
func (conf Config) NewMachine() *hardware.Machine {
	m := hardware.NewMachine()
	m.IOCycles = conf.Machine.IOCycles
	m.RefreshHalf = conf.Machine.RefreshHalfCycles
	return m
}
