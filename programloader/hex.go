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
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// record types used in Intel HEX files.
const (
	recordData           = 0x00
	recordEOF            = 0x01
	recordSegmentAddress = 0x02
	recordSegmentStart   = 0x03
	recordLinearAddress  = 0x04
	recordLinearStart    = 0x05
)

// the largest image that an Intel HEX file is allowed to describe. this is
// more than any AVR part has
const maxHexImage = 0x400000

// decodeHex converts the contents of an Intel HEX file to a flat byte image.
func decodeHex(data []byte) ([]byte, error) {
	var img []byte
	var base uint32

	scanner := bufio.NewScanner(bytes.NewReader(data))

	line := 0
	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if len(s) == 0 {
			continue
		}
		if s[0] != ':' {
			return nil, fmt.Errorf("line %d: missing start code", line)
		}

		rec, err := hex.DecodeString(s[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) < 5 {
			return nil, fmt.Errorf("line %d: record too short", line)
		}

		count := int(rec[0])
		if len(rec) != count+5 {
			return nil, fmt.Errorf("line %d: byte count does not match record length", line)
		}

		var sum uint8
		for _, b := range rec {
			sum += b
		}
		if sum != 0 {
			return nil, fmt.Errorf("line %d: checksum failed", line)
		}

		address := uint32(rec[1])<<8 | uint32(rec[2])
		payload := rec[4 : 4+count]

		switch rec[3] {
		case recordData:
			start := base + address
			end := start + uint32(count)
			if end > maxHexImage {
				return nil, fmt.Errorf("line %d: address %#x out of range", line, end)
			}
			if int(end) > len(img) {
				img = append(img, make([]byte, int(end)-len(img))...)
			}
			copy(img[start:end], payload)

		case recordEOF:
			return img, nil

		case recordSegmentAddress:
			if count != 2 {
				return nil, fmt.Errorf("line %d: segment address record must have 2 bytes", line)
			}
			base = (uint32(payload[0])<<8 | uint32(payload[1])) << 4

		case recordLinearAddress:
			if count != 2 {
				return nil, fmt.Errorf("line %d: linear address record must have 2 bytes", line)
			}
			base = (uint32(payload[0])<<8 | uint32(payload[1])) << 16

		case recordSegmentStart:
		case recordLinearStart:

		default:
			return nil, fmt.Errorf("line %d: unknown record type (%02x)", line, rec[3])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("missing end of file record")
}
