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

package platform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shadow338/8088-bios/hardware/clocks"
	"github.com/shadow338/8088-bios/platform"
	"github.com/shadow338/8088-bios/test"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	test.DemandSuccess(t, err)
	return path
}

// an empty path is the reference machine
func TestDefaultProfile(t *testing.T) {
	conf, err := platform.Load("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, conf.Machine.IOCycles, 12)
	test.ExpectEquality(t, conf.Machine.RefreshHalfCycles, clocks.RefreshHalfPeriod)
	test.ExpectEquality(t, conf.Run.Units, 100)
	test.ExpectEquality(t, conf.Run.Repeats, 1)
}

// omitted fields take defaults; present fields take the file's value
func TestPartialProfile(t *testing.T) {
	path := writeProfile(t, "machine:\n  io_cycles: 8\nrun:\n  units: 500\n")

	conf, err := platform.Load(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, conf.Machine.IOCycles, 8)
	test.ExpectEquality(t, conf.Machine.RefreshHalfCycles, clocks.RefreshHalfPeriod)
	test.ExpectEquality(t, conf.Run.Units, 500)
	test.ExpectEquality(t, conf.Run.Repeats, 1)
}

// an empty file is a valid profile of the stock board
func TestEmptyProfile(t *testing.T) {
	path := writeProfile(t, "")

	conf, err := platform.Load(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, conf, platform.Default())
}

func TestInvalidProfiles(t *testing.T) {
	// negative io_cycles is not a machine
	path := writeProfile(t, "machine:\n  io_cycles: -1\n")
	_, err := platform.Load(path)
	test.ExpectFailure(t, err)

	// units beyond the 16-bit request range
	path = writeProfile(t, "run:\n  units: 70000\n")
	_, err = platform.Load(path)
	test.ExpectFailure(t, err)

	// malformed yaml
	path = writeProfile(t, "machine: [\n")
	_, err = platform.Load(path)
	test.ExpectFailure(t, err)

	// missing file
	_, err = platform.Load(filepath.Join(t.TempDir(), "no-such-profile.yaml"))
	test.ExpectFailure(t, err)
}

// the machine built from a profile reflects the profile
func TestNewMachine(t *testing.T) {
	path := writeProfile(t, "machine:\n  io_cycles: 4\n  refresh_half_cycles: 100\n")

	conf, err := platform.Load(path)
	test.DemandSuccess(t, err)

	m := conf.NewMachine()
	test.ExpectEquality(t, m.IOCycles, 4)
	test.ExpectEquality(t, m.RefreshHalf, 100)
}
