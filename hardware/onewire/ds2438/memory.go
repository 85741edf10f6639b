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

package ds2438

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/wirehub/curated"
	"github.com/jetsetilly/wirehub/hardware/onewire"
)

// Sentinal error patterns for the memory functions.
const (
	PositionOutOfRange = "ds2438: memory position out of range (%d)"
)

// Size returns the number of emulated scratchpad bytes.
func (ds *DS2438) Size() int {
	return len(ds.memory)
}

// Pages returns the number of emulated scratchpad pages.
func (ds *DS2438) Pages() int {
	return ds.pages
}

// ClearMemory restores the scratchpad to the factory image and sets the
// status/configuration register to the operational default: automatic current
// measurement and current accumulator enabled, voltage input set to the
// battery, busy flags clear.
func (ds *DS2438) ClearMemory() {
	copy(ds.memory, factoryImage[:])

	ds.memory[regStatus] |= MaskIAD | MaskCA | MaskAD
	ds.memory[regStatus] &^= MaskTB | MaskNVB | MaskADB

	for p := 0; p < ds.pages; p++ {
		ds.calcCRC(p)
	}
}

// ReadMemory copies scratchpad bytes starting at position into dst. If there
// are fewer bytes than len(dst) between position and the end of the
// scratchpad then the copy is truncated and the boolean return value is
// false.
//
// It is an error for position to be outside of the scratchpad.
func (ds *DS2438) ReadMemory(dst []uint8, position int) (bool, error) {
	if position < 0 || position >= len(ds.memory) {
		return false, curated.Errorf(PositionOutOfRange, position)
	}
	n := copy(dst, ds.memory[position:])
	return n == len(dst), nil
}

// WriteMemory copies src into the scratchpad starting at position. The
// truncation and error rules are the same as for ReadMemory(). The CRC of
// every page touched by the write is recalculated.
//
// Unlike the Write Scratchpad command, WriteMemory() can change the read-only
// registers in page 0.
func (ds *DS2438) WriteMemory(src []uint8, position int) (bool, error) {
	if position < 0 || position >= len(ds.memory) {
		return false, curated.Errorf(PositionOutOfRange, position)
	}

	n := copy(ds.memory[position:], src)
	if n > 0 {
		for p := position / PageSize; p <= (position+n-1)/PageSize; p++ {
			ds.calcCRC(p)
		}
	}

	return n == len(src), nil
}

// CRC returns the cached checksum for the page. Returns false if the page is
// not emulated.
func (ds *DS2438) CRC(page int) (uint8, bool) {
	if page < 0 || page >= ds.pages {
		return 0, false
	}
	return ds.crc[page], true
}

// page returns the slice of memory for the page. the page must be in range.
func (ds *DS2438) page(page int) []uint8 {
	return ds.memory[page*PageSize : (page+1)*PageSize]
}

// calcCRC must be called whenever the contents of a page changes.
func (ds *DS2438) calcCRC(page int) {
	if page >= 0 && page < ds.pages {
		ds.crc[page] = onewire.CRC8(ds.page(page))
	}
}

// String returns the scratchpad contents, one page per line, with the cached
// checksum of each page.
func (ds *DS2438) String() string {
	s := strings.Builder{}
	for p := 0; p < ds.pages; p++ {
		s.WriteString(fmt.Sprintf("%d:", p))
		for _, v := range ds.page(p) {
			s.WriteString(fmt.Sprintf(" %02x", v))
		}
		s.WriteString(fmt.Sprintf(" [%02x]\n", ds.crc[p]))
	}
	return s.String()
}
