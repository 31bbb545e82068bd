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

package programloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopheravr/curated"
	"github.com/jetsetilly/gopheravr/programloader"
	"github.com/jetsetilly/gopheravr/test"
)

func TestFormatFromExtension(t *testing.T) {
	test.ExpectEquality(t, programloader.NewLoader("blink.hex", "").Format, programloader.FormatHex)
	test.ExpectEquality(t, programloader.NewLoader("blink.IHEX", "AUTO").Format, programloader.FormatHex)
	test.ExpectEquality(t, programloader.NewLoader("blink.eep", "").Format, programloader.FormatHex)
	test.ExpectEquality(t, programloader.NewLoader("blink.bin", "").Format, programloader.FormatBinary)
	test.ExpectEquality(t, programloader.NewLoader("blink", "").Format, programloader.FormatBinary)

	// explicit format overrides extension
	test.ExpectEquality(t, programloader.NewLoader("blink.hex", "bin").Format, programloader.FormatBinary)
}

func TestShortName(t *testing.T) {
	pl := programloader.NewLoader("/tmp/programs/blink.hex", "")
	test.ExpectEquality(t, pl.ShortName(), "blink")
}

func TestBinary(t *testing.T) {
	pl := programloader.NewLoaderFromData("test.bin", []byte{0x0c, 0x94, 0x34, 0x12, 0xff}, "")
	test.ExpectSuccess(t, pl.HasLoaded())

	program := []uint16{0xaaaa, 0xaaaa, 0xaaaa, 0xaaaa}
	test.ExpectSuccess(t, pl.LoadProgram(program))
	test.ExpectEquality(t, program[0], 0x940c)
	test.ExpectEquality(t, program[1], 0x1234)
	test.ExpectEquality(t, program[2], 0x00ff)
	test.ExpectEquality(t, program[3], 0x0000)

	// image too large
	test.ExpectFailure(t, pl.LoadProgram(make([]uint16, 2)))
	err := pl.LoadProgram(make([]uint16, 2))
	test.ExpectSuccess(t, curated.Is(err, programloader.CapacityError))
}

func TestHex(t *testing.T) {
	data := []byte(":040000001122334452\r\n" +
		":020000020001FB\n" +
		":010000009966\n" +
		":00000001FF\n" +
		"this line is after the end of file and will not be read\n")

	pl := programloader.NewLoaderFromData("test.hex", data, "")
	img, err := pl.Image()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(img), 0x11)
	test.ExpectEquality(t, img[0], 0x11)
	test.ExpectEquality(t, img[3], 0x44)
	test.ExpectEquality(t, img[4], 0x00)
	test.ExpectEquality(t, img[0x10], 0x99)

	program := make([]uint16, 16)
	test.ExpectSuccess(t, pl.LoadProgram(program))
	test.ExpectEquality(t, program[0], 0x2211)
	test.ExpectEquality(t, program[1], 0x4433)
	test.ExpectEquality(t, program[8], 0x0099)
}

func TestHexErrors(t *testing.T) {
	for _, c := range []struct {
		name string
		data string
	}{
		{name: "no start code", data: "040000001122334452\n:00000001FF\n"},
		{name: "checksum", data: ":040000001122334453\n:00000001FF\n"},
		{name: "length", data: ":0500000011223344AE\n:00000001FF\n"},
		{name: "not hex", data: ":04000000112233ZZ52\n:00000001FF\n"},
		{name: "record type", data: ":00000009F7\n:00000001FF\n"},
		{name: "missing eof", data: ":040000001122334452\n"},
	} {
		pl := programloader.NewLoaderFromData("test.hex", []byte(c.data), "")
		_, err := pl.Image()
		test.ExpectFailure(t, err, c.name)
		test.ExpectSuccess(t, curated.Is(err, programloader.FormatError), c.name)
	}
}

func TestEEPROM(t *testing.T) {
	pl := programloader.NewLoaderFromData("test.eep", []byte(":0400000011223344AE\n:00000001FF\n"), "")

	// checksum in the data above is wrong. the error is reported by LoadEEPROM
	eeprom := make([]uint8, 8)
	test.ExpectFailure(t, pl.LoadEEPROM(eeprom))

	pl = programloader.NewLoaderFromData("test.eep", []byte(":040000001122334452\n:00000001FF\n"), "")
	test.ExpectSuccess(t, pl.LoadEEPROM(eeprom))
	test.ExpectEquality(t, eeprom[0], 0x11)
	test.ExpectEquality(t, eeprom[3], 0x44)
	test.ExpectEquality(t, eeprom[4], 0xff)
	test.ExpectEquality(t, eeprom[7], 0xff)

	test.ExpectFailure(t, pl.LoadEEPROM(make([]uint8, 2)))
}

func TestLoadFromFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00, 0x00, 0xff, 0xcf}, 0o644))

	pl := programloader.NewLoader(fn, "")
	test.ExpectFailure(t, pl.HasLoaded())
	test.ExpectSuccess(t, pl.Load())
	test.ExpectSuccess(t, pl.HasLoaded())
	test.ExpectEquality(t, len(pl.Hash), 40)

	// the expected hash must match
	hash := pl.Hash
	pl = programloader.NewLoader(fn, "")
	pl.Hash = "0000000000000000000000000000000000000000"
	test.ExpectFailure(t, pl.Load())

	pl = programloader.NewLoader(fn, "")
	pl.Hash = hash
	program := make([]uint16, 4)
	test.ExpectSuccess(t, pl.LoadProgram(program))
	test.ExpectEquality(t, program[1], 0xcfff)
}

func TestLoadErrors(t *testing.T) {
	pl := programloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"), "")
	err := pl.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, programloader.LoadError))

	pl = programloader.NewLoader("ftp://example.com/program.bin", "")
	test.ExpectFailure(t, pl.Load())

	fn := filepath.Join(t.TempDir(), "empty.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{}, 0o644))
	pl = programloader.NewLoader(fn, "")
	test.ExpectFailure(t, pl.Load())

	pl = programloader.NewLoaderFromData("test", []byte{0x00}, "ELF")
	_, err = pl.Image()
	test.ExpectFailure(t, err)
}
