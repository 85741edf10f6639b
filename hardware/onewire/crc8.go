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

// crcTable is the lookup table for the Dallas/Maxim CRC8. The polynomial is
// x^8 + x^5 + x^4 + 1, processed least significant bit first (0x8c reflected).
var crcTable [256]uint8

func init() {
	for i := range crcTable {
		c := uint8(i)
		for b := 0; b < 8; b++ {
			if c&0x01 == 0x01 {
				c = (c >> 1) ^ 0x8c
			} else {
				c >>= 1
			}
		}
		crcTable[i] = c
	}
}

// CRC8 returns the checksum used by 1-Wire devices for ROM codes and memory
// pages. Appending the checksum to data and running CRC8 again returns zero.
func CRC8(data []uint8) uint8 {
	var crc uint8
	for _, v := range data {
		crc = crcTable[crc^v]
	}
	return crc
}
