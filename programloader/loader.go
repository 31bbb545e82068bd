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

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopheravr/curated"
)

// Sentinal error patterns.
const (
	LoadError     = "programloader: %v"
	FormatError   = "programloader: %s: %v"
	CapacityError = "programloader: image too large for %s (%d bytes, capacity %d)"
)

// List of recognised formats.
const (
	FormatAuto   = "AUTO"
	FormatBinary = "BIN"
	FormatHex    = "HEX"
)

// FileExtensions is the list of file extensions that are recognised by the
// programloader package.
var FileExtensions = [...]string{".BIN", ".ROM", ".HEX", ".IHEX", ".IHX", ".EEP"}

// Loader is used to specify the program to load into the AVR.
type Loader struct {
	// filename of program to load. can be a http or https URL
	Filename string

	// one of the Format* values. FormatAuto will be changed to an actual
	// format by NewLoader()
	Format string

	// expected hash of the loaded file. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. this is the unconverted content of the file
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument will be used to set the Format field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to decide. Files with an unrecognised extension are
// treated as binary.
func NewLoader(filename string, format string) Loader {
	pl := Loader{
		Filename: filename,
		Format:   FormatBinary,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != FormatAuto && format != "" {
		pl.Format = format
		return pl
	}

	switch strings.ToUpper(path.Ext(filename)) {
	case ".HEX":
		fallthrough
	case ".IHEX":
		fallthrough
	case ".IHX":
		fallthrough
	case ".EEP":
		pl.Format = FormatHex
	}

	return pl
}

// NewLoaderFromData creates a Loader that has already been loaded with the
// supplied data. The name argument is used in the same way as the filename
// argument for NewLoader().
func NewLoaderFromData(name string, data []byte, format string) Loader {
	pl := NewLoader(name, format)
	pl.Data = data
	pl.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	return pl
}

// ShortName returns a shortened version of the Loader filename.
func (pl Loader) ShortName() string {
	name := path.Base(pl.Filename)
	name = strings.TrimSuffix(name, path.Ext(pl.Filename))
	return name
}

// HasLoaded returns true if Load() has been successfully called.
func (pl Loader) HasLoaded() bool {
	return len(pl.Data) > 0
}

// Load the program file. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (pl *Loader) Load() error {
	if len(pl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(pl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(pl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		pl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		fallthrough

	case "":
		pl.Data, err = os.ReadFile(pl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(pl.Data) == 0 {
		return curated.Errorf(LoadError, "file is empty")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(pl.Data))
	if pl.Hash != "" && pl.Hash != hash {
		pl.Data = nil
		return curated.Errorf(LoadError, "unexpected hash value")
	}
	pl.Hash = hash

	return nil
}

// Image returns the loaded data as a flat byte image. Binary files are
// returned unchanged. Gaps in Intel HEX files are zero filled.
func (pl Loader) Image() ([]byte, error) {
	switch pl.Format {
	case FormatBinary:
		return pl.Data, nil
	case FormatHex:
		img, err := decodeHex(pl.Data)
		if err != nil {
			return nil, curated.Errorf(FormatError, pl.ShortName(), err)
		}
		return img, nil
	}
	return nil, curated.Errorf(FormatError, pl.ShortName(), fmt.Sprintf("unknown format (%s)", pl.Format))
}

// LoadProgram copies the program image into program memory. Load() will be
// called if it has not been called already. Bytes are paired into words in
// little-endian order. An odd length image has the final high byte set to
// zero. Program memory beyond the end of the image is cleared.
func (pl *Loader) LoadProgram(program []uint16) error {
	img, err := pl.image()
	if err != nil {
		return err
	}

	if len(img) > len(program)*2 {
		return curated.Errorf(CapacityError, "program memory", len(img), len(program)*2)
	}

	clear(program)
	for i, b := range img {
		if i&0x01 == 0x01 {
			program[i>>1] |= uint16(b) << 8
		} else {
			program[i>>1] = uint16(b)
		}
	}

	return nil
}

// LoadEEPROM copies the image into EEPROM. Load() will be called if it has not
// been called already. EEPROM beyond the end of the image is set to 0xff,
// which is the value of erased EEPROM.
func (pl *Loader) LoadEEPROM(eeprom []uint8) error {
	img, err := pl.image()
	if err != nil {
		return err
	}

	if len(img) > len(eeprom) {
		return curated.Errorf(CapacityError, "eeprom", len(img), len(eeprom))
	}

	n := copy(eeprom, img)
	for i := n; i < len(eeprom); i++ {
		eeprom[i] = 0xff
	}

	return nil
}

func (pl *Loader) image() ([]byte, error) {
	if err := pl.Load(); err != nil {
		return nil, err
	}
	return pl.Image()
}
