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

package logger_test

import (
	"strings"
	"testing"

	"github.com/shadow338/8088-bios/logger"
	"github.com/shadow338/8088-bios/test"
)

// test central logger and the use of the Tail() function
func TestCentralLogger(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the builder before continuing, makes comparisons easier to
	// manage
	w.Reset()

	logger.Log("test2", "this is another test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	logger.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

// adjacent duplicate entries collapse into a repeat count rather than
// flooding the log
func TestRepeatCollapse(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log("poll", "waiting on refresh toggle")
	logger.Log("poll", "waiting on refresh toggle")
	logger.Log("poll", "waiting on refresh toggle")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "poll: waiting on refresh toggle (repeat x3)\n")

	// a different entry breaks the run
	w.Reset()
	logger.Log("poll", "done")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "poll: waiting on refresh toggle (repeat x3)\npoll: done\n")
}

func TestLogf(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Logf("timer", "consumed %d cycles", 7272)
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "timer: consumed 7272 cycles\n")
}
