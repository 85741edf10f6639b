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
	"github.com/jetsetilly/wirehub/curated"
	"github.com/jetsetilly/wirehub/hardware/onewire"
	"github.com/jetsetilly/wirehub/logger"
)

// Sentinal error patterns returned by NewDS2438().
const (
	InvalidPageCount = "ds2438: invalid page count (%d)"
)

// logging tag for the device.
const logTag = "ds2438"

// DS2438 represents the emulated device. It implements the onewire.Device
// interface.
type DS2438 struct {
	perm logger.Permission
	rom  onewire.ROM

	// number of emulated pages. the real device has eight
	pages int

	// the scratchpad. amend only through functions that also call calcCRC()
	memory []uint8

	// one checksum for each page. there is an extra slot that is never used
	crc []uint8

	// staged voltage registers. copied into page 0 by the Convert V command
	vad [2]uint8
	vdd [2]uint8
}

// ID returns the seven identity bytes for a DS2438 with the given serial
// number. The first byte is the DS2438 family code.
func ID(serial [6]uint8) [7]uint8 {
	var id [7]uint8
	id[0] = FamilyCode
	copy(id[1:], serial[:])
	return id
}

// NewDS2438 is the preferred method of initialisation for the DS2438 type.
// The pages argument is the number of scratchpad pages to emulate and must be
// between 1 and MaxPages.
func NewDS2438(perm logger.Permission, id [7]uint8, pages int) (*DS2438, error) {
	if pages < 1 || pages > MaxPages {
		return nil, curated.Errorf(InvalidPageCount, pages)
	}

	ds := &DS2438{
		perm:   perm,
		rom:    onewire.NewROM(id),
		pages:  pages,
		memory: make([]uint8, pages*PageSize),
		crc:    make([]uint8, pages+1),
	}
	ds.ClearMemory()

	logger.Logf(ds.perm, logTag, "created %v with %d pages", ds.rom, ds.pages)

	return ds, nil
}

// Snapshot creates a copy of the device in its current state.
func (ds *DS2438) Snapshot() *DS2438 {
	n := *ds
	n.memory = make([]uint8, len(ds.memory))
	n.crc = make([]uint8, len(ds.crc))
	copy(n.memory, ds.memory)
	copy(n.crc, ds.crc)
	return &n
}

// ROM implements the onewire.Device interface.
func (ds *DS2438) ROM() onewire.ROM {
	return ds.rom
}

// receivePage reads a page number from the bus and checks that it is in
// range. Returns false if the transaction should not continue.
func (ds *DS2438) receivePage(bus onewire.Transport, command string) (int, bool) {
	var b [1]uint8
	if bus.Receive(b[:]) != nil {
		return 0, false
	}

	// the real device would not respond to a page outside of its memory. there
	// is nothing to report to the host
	page := int(b[0])
	if page >= ds.pages {
		logger.Logf(ds.perm, logTag, "%s: page %d out of range", command, page)
		return 0, false
	}

	return page, true
}

// HandleTransaction implements the onewire.Device interface.
//
// A failure to receive or send at any point ends the transaction. Changes to
// memory made before the failure are kept.
func (ds *DS2438) HandleTransaction(bus onewire.Transport) {
	var cmd [1]uint8
	if bus.Receive(cmd[:]) != nil {
		return
	}

	switch cmd[0] {
	case ReadScratchpad:
		page, ok := ds.receivePage(bus, "read scratchpad")
		if !ok {
			return
		}
		if bus.Send(ds.page(page)) != nil {
			return
		}
		if bus.Send(ds.crc[page : page+1]) != nil {
			return
		}
		logger.Logf(ds.perm, logTag, "read scratchpad: page %d", page)

	case WriteScratchpad:
		page, ok := ds.receivePage(bus, "write scratchpad")
		if !ok {
			return
		}

		n := 0
		for a := page * PageSize; a < (page+1)*PageSize; a++ {
			var b [1]uint8

			// the host is allowed to stop sending at any time
			if bus.Receive(b[:]) != nil {
				break
			}
			n++

			if a >= readOnlyFirst && a <= readOnlyLast {
				continue
			}
			ds.memory[a] = b[0]
		}

		ds.calcCRC(page)
		logger.Logf(ds.perm, logTag, "write scratchpad: page %d (%d bytes)", page, n)

	case CopyScratchpad:
		// no EEPROM so there is nothing to copy to
		page, ok := ds.receivePage(bus, "copy scratchpad")
		if !ok {
			return
		}
		logger.Logf(ds.perm, logTag, "copy scratchpad: page %d (not emulated)", page)

	case RecallMemory:
		// no EEPROM so there is nothing to recall from
		page, ok := ds.receivePage(bus, "recall memory")
		if !ok {
			return
		}
		logger.Logf(ds.perm, logTag, "recall memory: page %d (not emulated)", page)

	case ConvertT:
		// the temperature register is already up to date
		ds.calcCRC(0)
		logger.Logf(ds.perm, logTag, "convert t: %d", ds.GetTemperature())

	case ConvertV:
		ds.updateVoltage()
		ds.calcCRC(0)
		logger.Logf(ds.perm, logTag, "convert v: %d", DecodeVoltage([2]uint8{ds.memory[regVoltage], ds.memory[regVoltage+1]}))

	default:
		logger.Logf(ds.perm, logTag, "unrecognised command %#02x", cmd[0])
		bus.ReportError(cmd[0])
	}
}

// updateVoltage copies the staged voltage selected by the AD bit into page 0.
// The caller should recalculate the page 0 checksum.
func (ds *DS2438) updateVoltage() {
	v := ds.vad
	if ds.memory[regStatus]&MaskAD == MaskAD {
		v = ds.vdd
	}
	copy(ds.memory[regVoltage:], v[:])
}

// SelectVDD sets the AD bit of the status/configuration register. A value of
// true selects the battery input for the next Convert V command. A value of
// false selects the general purpose input.
func (ds *DS2438) SelectVDD(vdd bool) {
	if vdd {
		ds.memory[regStatus] |= MaskAD
	} else {
		ds.memory[regStatus] &^= MaskAD
	}
	ds.calcCRC(0)
}

// Status returns the status/configuration register.
func (ds *DS2438) Status() uint8 {
	return ds.memory[regStatus]
}

// SetTemperature sets the temperature register in page 0. The value is clamped
// to the range of the device.
func (ds *DS2438) SetTemperature(degC float32) {
	b := EncodeTemperature(degC)
	copy(ds.memory[regTemperature:], b[:])
	ds.calcCRC(0)
}

// SetTemperatureInt sets the temperature register in page 0 to a whole number
// of degrees. The value is clamped to the range of the device.
func (ds *DS2438) SetTemperatureInt(degC int8) {
	b := EncodeTemperatureInt(degC)
	copy(ds.memory[regTemperature:], b[:])
	ds.calcCRC(0)
}

// GetTemperature returns the whole degree part of the temperature register.
// The fractional part is not returned even if it was set with
// SetTemperature(). Use DecodeTemperatureFloat() with the contents of
// ReadMemory() for the full precision.
func (ds *DS2438) GetTemperature() int8 {
	return DecodeTemperature([2]uint8{ds.memory[regTemperature], ds.memory[regTemperature+1]})
}

// SetVADVoltage stages the general purpose input voltage in units of 10mV.
// Only the lowest 10 bits are used.
func (ds *DS2438) SetVADVoltage(v10mV uint16) {
	ds.vad = EncodeVoltage(v10mV)
}

// GetVADVoltage returns the staged general purpose input voltage.
func (ds *DS2438) GetVADVoltage() uint16 {
	return DecodeVoltage(ds.vad)
}

// SetVDDVoltage stages the battery voltage in units of 10mV. Only the lowest
// 10 bits are used.
func (ds *DS2438) SetVDDVoltage(v10mV uint16) {
	ds.vdd = EncodeVoltage(v10mV)
}

// GetVDDVoltage returns the staged battery voltage.
func (ds *DS2438) GetVDDVoltage() uint16 {
	return DecodeVoltage(ds.vdd)
}

// SetCurrent sets the current register in page 0. The value is a signed 11 bit
// quantity.
func (ds *DS2438) SetCurrent(v int16) {
	b := EncodeCurrent(v)
	copy(ds.memory[regCurrent:], b[:])
	ds.calcCRC(0)
}

// GetCurrent returns the value of the current register.
func (ds *DS2438) GetCurrent() int16 {
	return DecodeCurrent([2]uint8{ds.memory[regCurrent], ds.memory[regCurrent+1]})
}
