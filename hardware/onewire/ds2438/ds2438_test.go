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

package ds2438_test

import (
	"testing"

	"github.com/jetsetilly/wirehub/hardware/onewire"
	"github.com/jetsetilly/wirehub/hardware/onewire/ds2438"
	"github.com/jetsetilly/wirehub/hardware/onewire/transport"
	"github.com/jetsetilly/wirehub/test"
)

// page returns the contents of the page followed by its cached checksum. in
// other words, what a Read Scratchpad command should return.
func page(t *testing.T, ds *ds2438.DS2438, p int) []uint8 {
	t.Helper()
	d := make([]uint8, ds2438.PageSize)
	_, err := ds.ReadMemory(d, p*ds2438.PageSize)
	test.DemandSuccess(t, err)
	crc, ok := ds.CRC(p)
	test.DemandSuccess(t, ok)
	return append(d, crc)
}

func run(ds *ds2438.DS2438, host ...uint8) *transport.Script {
	s := transport.NewScript(host...)
	ds.HandleTransaction(s)
	return s
}

func TestDevice(t *testing.T) {
	ds := newDevice(t, 1)
	var dev onewire.Device = ds
	test.ExpectEquality(t, dev.ROM().Family(), ds2438.FamilyCode)
	test.ExpectSuccess(t, dev.ROM().Valid())
	test.ExpectEquality(t, dev.ROM().String(), "26.00da24380000."+hex2(dev.ROM()[7]))
}

func TestReadScratchpad(t *testing.T) {
	ds := newDevice(t, ds2438.MaxPages)

	for p := 0; p < ds2438.MaxPages; p++ {
		s := run(ds, ds2438.ReadScratchpad, uint8(p))
		test.ExpectEquality(t, string(s.Response), string(page(t, ds, p)), "page", p)
		test.ExpectEquality(t, len(s.Response), ds2438.PageSize+1)
		test.ExpectEquality(t, len(s.Errors), 0)
	}
}

func TestReadScratchpadInterrupted(t *testing.T) {
	ds := newDevice(t, 2)
	expected := page(t, ds, 1)

	// host stops listening part way through the page
	s := transport.NewScript(ds2438.ReadScratchpad, 0x01)
	s.LimitSend(4)
	ds.HandleTransaction(s)
	test.ExpectEquality(t, string(s.Response), string(expected[:4]))

	// host stops listening before the checksum
	s = transport.NewScript(ds2438.ReadScratchpad, 0x01)
	s.LimitSend(ds2438.PageSize)
	ds.HandleTransaction(s)
	test.ExpectEquality(t, string(s.Response), string(expected[:ds2438.PageSize]))

	// no page number
	s = run(ds, ds2438.ReadScratchpad)
	test.ExpectEquality(t, len(s.Response), 0)
}

func TestWriteScratchpad(t *testing.T) {
	ds := newDevice(t, 2)
	before := page(t, ds, 0)

	s := run(ds, ds2438.WriteScratchpad, 0x00, 0xf3, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xf7)
	test.ExpectEquality(t, s.Consumed, 10)
	test.ExpectEquality(t, len(s.Response), 0)

	// bytes 1 to 6 of page 0 are read only
	after := page(t, ds, 0)
	test.ExpectEquality(t, after[0], 0xf3)
	test.ExpectEquality(t, string(after[1:7]), string(before[1:7]))
	test.ExpectEquality(t, after[7], 0xf7)
	checkCRC(t, ds)

	// every byte of page 1 is writable
	data := []uint8{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17}
	run(ds, append([]uint8{ds2438.WriteScratchpad, 0x01}, data...)...)
	test.ExpectEquality(t, string(page(t, ds, 1)[:ds2438.PageSize]), string(data))
	checkCRC(t, ds)

	// surplus bytes are not consumed
	s = run(ds, append([]uint8{ds2438.WriteScratchpad, 0x01}, append(data, 0xff)...)...)
	test.ExpectEquality(t, s.Consumed, 10)

	// a read returns the written page
	s = run(ds, ds2438.ReadScratchpad, 0x01)
	test.ExpectEquality(t, string(s.Response), string(page(t, ds, 1)))
}

func TestPartialWriteScratchpad(t *testing.T) {
	ds := newDevice(t, 2)
	before := page(t, ds, 1)

	// only three bytes arrive before the bus reset
	s := run(ds, ds2438.WriteScratchpad, 0x01, 0xaa, 0xbb, 0xcc)
	test.ExpectEquality(t, s.Consumed, 5)

	after := page(t, ds, 1)
	test.ExpectEquality(t, string(after[:3]), string([]uint8{0xaa, 0xbb, 0xcc}))
	test.ExpectEquality(t, string(after[3:ds2438.PageSize]), string(before[3:ds2438.PageSize]))
	checkCRC(t, ds)

	// the read after the partial write returns what is stored
	s = run(ds, ds2438.ReadScratchpad, 0x01)
	test.ExpectEquality(t, string(s.Response), string(after))

	// no data bytes at all. the checksum is still recalculated
	run(ds, ds2438.WriteScratchpad, 0x00)
	checkCRC(t, ds)

	// page 0 with read only bytes still aligns the bytes that follow
	run(ds, ds2438.WriteScratchpad, 0x00, 0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x5a)
	test.ExpectEquality(t, ds.Status(), 0x01)
	test.ExpectEquality(t, page(t, ds, 0)[7], 0x5a)
}

func TestPageOutOfRange(t *testing.T) {
	for _, cmd := range []uint8{ds2438.ReadScratchpad, ds2438.WriteScratchpad, ds2438.CopyScratchpad, ds2438.RecallMemory} {
		ds := newDevice(t, 2)
		before := ds.Snapshot()

		for _, p := range []uint8{2, 7, 0xff} {
			s := run(ds, cmd, p, 0x01, 0x02, 0x03)

			// nothing beyond the page number is consumed and nothing is sent
			test.ExpectEquality(t, s.Consumed, 2, "command", cmd)
			test.ExpectEquality(t, len(s.Response), 0, "command", cmd)
			test.ExpectEquality(t, len(s.Errors), 0, "command", cmd)
			test.ExpectEquality(t, ds.String(), before.String(), "command", cmd)
		}
	}
}

func TestCopyAndRecall(t *testing.T) {
	ds := newDevice(t, 8)
	before := ds.Snapshot()

	for _, cmd := range []uint8{ds2438.CopyScratchpad, ds2438.RecallMemory} {
		s := run(ds, cmd, 0x03)
		test.ExpectEquality(t, s.Consumed, 2)
		test.ExpectEquality(t, len(s.Response), 0)
		test.ExpectEquality(t, len(s.Errors), 0)
		test.ExpectEquality(t, ds.String(), before.String())
	}
}

func TestConvertT(t *testing.T) {
	ds := newDevice(t, 1)

	ds.SetTemperature(21.5)
	s := run(ds, ds2438.ConvertT)
	test.ExpectEquality(t, s.Consumed, 1)
	test.ExpectEquality(t, len(s.Response), 0)
	test.ExpectEquality(t, ds.GetTemperature(), 21)
	checkCRC(t, ds)

	s = run(ds, ds2438.ReadScratchpad, 0x00)
	test.ExpectEquality(t, string(s.Response[1:3]), string([]uint8{0x80, 0x15}))
}

func TestConvertV(t *testing.T) {
	ds := newDevice(t, 1)

	// battery input selected by default
	ds.SetVDDVoltage(500)
	ds.SetVADVoltage(300)
	before, _ := ds.CRC(0)

	run(ds, ds2438.ConvertV)
	p := page(t, ds, 0)
	test.ExpectEquality(t, string(p[3:5]), string([]uint8{0xf4, 0x01}))
	test.ExpectInequality(t, p[ds2438.PageSize], before)
	checkCRC(t, ds)

	// general purpose input selected through the status register
	run(ds, ds2438.WriteScratchpad, 0x00, ds.Status()&^ds2438.MaskAD)
	run(ds, ds2438.ConvertV)
	p = page(t, ds, 0)
	test.ExpectEquality(t, string(p[3:5]), string([]uint8{0x2c, 0x01}))
	checkCRC(t, ds)

	// and back to the battery
	ds.SelectVDD(true)
	checkCRC(t, ds)
	run(ds, ds2438.ConvertV)
	test.ExpectEquality(t, string(page(t, ds, 0)[3:5]), string([]uint8{0xf4, 0x01}))
}

func TestUnrecognisedCommand(t *testing.T) {
	ds := newDevice(t, 8)
	before := ds.Snapshot()

	s := run(ds, 0x12, 0x00, 0x01)
	test.ExpectEquality(t, len(s.Errors), 1)
	test.ExpectEquality(t, s.Errors[0], 0x12)
	test.ExpectEquality(t, s.Consumed, 1)
	test.ExpectEquality(t, len(s.Response), 0)
	test.ExpectEquality(t, ds.String(), before.String())
}

func TestNoCommand(t *testing.T) {
	ds := newDevice(t, 8)
	before := ds.Snapshot()

	s := run(ds)
	test.ExpectEquality(t, len(s.Errors), 0)
	test.ExpectEquality(t, len(s.Response), 0)
	test.ExpectEquality(t, ds.String(), before.String())
}

func TestTemperature(t *testing.T) {
	ds := newDevice(t, 1)

	ds.SetTemperature(130.0)
	test.ExpectEquality(t, ds.GetTemperature(), 125)
	test.ExpectEquality(t, string(page(t, ds, 0)[1:3]), string([]uint8{0x00, 0x7d}))
	checkCRC(t, ds)

	ds.SetTemperature(-60.0)
	test.ExpectEquality(t, ds.GetTemperature(), -55)
	test.ExpectEquality(t, string(page(t, ds, 0)[1:3]), string([]uint8{0x00, 0xc9}))
	checkCRC(t, ds)

	ds.SetTemperatureInt(40)
	test.ExpectEquality(t, ds.GetTemperature(), 40)
	test.ExpectEquality(t, page(t, ds, 0)[1], 0x00)
	checkCRC(t, ds)
}

func TestVoltage(t *testing.T) {
	ds := newDevice(t, 1)
	before := ds.Snapshot()

	ds.SetVADVoltage(1023)
	test.ExpectEquality(t, ds.GetVADVoltage(), 1023)
	ds.SetVADVoltage(2000)
	test.ExpectEquality(t, ds.GetVADVoltage(), 2000&0x3ff)

	ds.SetVDDVoltage(500)
	test.ExpectEquality(t, ds.GetVDDVoltage(), 500)

	// staged voltages do not change the scratchpad until Convert V
	test.ExpectEquality(t, ds.String(), before.String())
}

func TestCurrent(t *testing.T) {
	ds := newDevice(t, 1)

	ds.SetCurrent(-1)
	test.ExpectEquality(t, ds.GetCurrent(), -1)
	checkCRC(t, ds)

	ds.SetCurrent(100)
	test.ExpectEquality(t, ds.GetCurrent(), 100)
	checkCRC(t, ds)
}
