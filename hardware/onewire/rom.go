// This file is part of Wirehub.
//
// Wirehub is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Wirehub is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Wirehub.  If not, see <https://www.gnu.org/licenses/>.

package onewire

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/jetsetilly/wirehub/curated"
)

// Sentinal error patterns returned by ParseROM().
const (
	MalformedROM = "rom: malformed rom string (%s)"
	ROMChecksum  = "rom: checksum mismatch (%#02x should be %#02x)"
)

// ROM is the 64 bit identity of a 1-Wire device in the order that it is
// transmitted on the bus: seven identity bytes followed by the CRC8 of those
// bytes. The first identity byte is conventionally the family code.
type ROM [8]uint8

// NewROM creates a ROM from seven identity bytes. The bytes are opaque to the
// device and are only used by the search layer.
func NewROM(id [7]uint8) ROM {
	var r ROM
	copy(r[:], id[:])
	r[7] = CRC8(id[:])
	return r
}

// Family returns the first byte of the ROM code.
func (r ROM) Family() uint8 {
	return r[0]
}

// Serial returns the six bytes between the family code and the checksum.
func (r ROM) Serial() [6]uint8 {
	var s [6]uint8
	copy(s[:], r[1:7])
	return s
}

// Valid returns true if the checksum byte matches the identity bytes.
func (r ROM) Valid() bool {
	return CRC8(r[:7]) == r[7]
}

// String returns the canonical form of the ROM code. The serial number is
// printed most significant byte first.
//
//	26.0000da243800.ab
func (r ROM) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02x.", r[0]))
	for i := 6; i > 0; i-- {
		s.WriteString(fmt.Sprintf("%02x", r[i]))
	}
	s.WriteString(fmt.Sprintf(".%02x", r[7]))
	return s.String()
}

// ParseROM is the inverse of String(). If the checksum part is "--" the
// checksum will be calculated rather than verified.
func ParseROM(s string) (ROM, error) {
	var r ROM

	p := strings.Split(strings.TrimSpace(s), ".")
	if len(p) != 3 || len(p[0]) != 2 || len(p[1]) != 12 || len(p[2]) != 2 {
		return r, curated.Errorf(MalformedROM, s)
	}

	f, err := hex.DecodeString(p[0])
	if err != nil {
		return r, curated.Errorf(MalformedROM, s)
	}
	sn, err := hex.DecodeString(p[1])
	if err != nil {
		return r, curated.Errorf(MalformedROM, s)
	}

	r[0] = f[0]
	for i := range sn {
		r[6-i] = sn[i]
	}

	crc := CRC8(r[:7])
	if p[2] == "--" {
		r[7] = crc
		return r, nil
	}

	c, err := hex.DecodeString(p[2])
	if err != nil {
		return r, curated.Errorf(MalformedROM, s)
	}
	if c[0] != crc {
		return r, curated.Errorf(ROMChecksum, c[0], crc)
	}
	r[7] = crc

	return r, nil
}
