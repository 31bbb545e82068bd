// This file is part of GopherAVR.
//
// GopherAVR is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAVR is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAVR.  If not, see <https://www.gnu.org/licenses/>.

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopheravr/hardware/cpu/execution"
	"github.com/jetsetilly/gopheravr/test"
)

func TestRing(t *testing.T) {
	r := execution.NewRing(3)
	test.ExpectEquality(t, r.Len(), 0)
	test.ExpectEquality(t, len(r.Results()), 0)

	r.Trace(execution.Result{InstructionCount: 1})
	r.Trace(execution.Result{InstructionCount: 2})
	test.ExpectEquality(t, r.Len(), 2)

	res := r.Results()
	test.ExpectEquality(t, res[0].InstructionCount, 1)
	test.ExpectEquality(t, res[1].InstructionCount, 2)

	r.Trace(execution.Result{InstructionCount: 3})
	r.Trace(execution.Result{InstructionCount: 4})
	r.Trace(execution.Result{InstructionCount: 5})
	test.ExpectEquality(t, r.Len(), 3)

	res = r.Results()
	test.ExpectEquality(t, res[0].InstructionCount, 3)
	test.ExpectEquality(t, res[1].InstructionCount, 4)
	test.ExpectEquality(t, res[2].InstructionCount, 5)

	r.Clear()
	test.ExpectEquality(t, r.Len(), 0)
}

func TestZeroSizedRing(t *testing.T) {
	r := execution.NewRing(0)
	r.Trace(execution.Result{InstructionCount: 10})
	r.Trace(execution.Result{InstructionCount: 11})
	test.ExpectEquality(t, r.Len(), 1)
	test.ExpectEquality(t, r.Results()[0].InstructionCount, 11)
}

func TestRegisterString(t *testing.T) {
	var r execution.Result
	r.Registers[0] = 0xab
	r.Registers[31] = 0x01

	s := r.RegisterString()
	test.ExpectEquality(t, len(s), 32*7-1)
	test.ExpectEquality(t, s[:6], "r00=ab")
	test.ExpectEquality(t, s[len(s)-6:], "r31=01")
	test.ExpectEquality(t, s[55], '\n')
}
