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

// FamilyCode is the first byte of the ROM code for all DS2438 devices.
const FamilyCode = 0x26

// memory geometry.
const (
	PageSize = 8
	MaxPages = 8
)

// Function commands.
const (
	ReadScratchpad  = 0xbe
	WriteScratchpad = 0x4e
	CopyScratchpad  = 0x48
	RecallMemory    = 0xb8
	ConvertT        = 0x44
	ConvertV        = 0xb4
)

// Bits in the status/configuration register (page 0, byte 0).
const (
	// enable automatic current measurements
	MaskIAD = 0x01

	// enable current accumulator (page 7, bytes 4-7)
	MaskCA = 0x02

	// shadow current accumulator to EEPROM
	MaskEE = 0x04

	// voltage A/D input select. 1: battery (VDD), 0: general purpose (VAD)
	MaskAD = 0x08

	// temperature busy flag
	MaskTB = 0x10

	// EEPROM busy flag
	MaskNVB = 0x20

	// A/D converter busy flag
	MaskADB = 0x40
)

// Offsets of the measurement registers in page 0.
const (
	regStatus      = 0
	regTemperature = 1
	regVoltage     = 3
	regCurrent     = 5
)

// the bytes in page 0 that are only ever written by the device. a Write
// Scratchpad command consumes but discards bytes sent for these addresses.
const (
	readOnlyFirst = 0x01
	readOnlyLast  = 0x06
)

// factoryImage is the scratchpad as it is found on a new device. Byte 0 is
// patched by ClearMemory() before use.
var factoryImage = [MaxPages * PageSize]uint8{
	0x09, 0x20, 0x14, 0xac, 0x00, 0x40, 0x01, 0x00,
	0xec, 0xab, 0x23, 0x58, 0xff, 0x08, 0x00, 0xfc,
	0x00, 0x00, 0x00, 0x00, 0x6d, 0x83, 0x03, 0x02,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}
