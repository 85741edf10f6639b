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

import "math"

// temperature limits of the device in whole degrees Celsius.
const (
	TemperatureMax = 125
	TemperatureMin = -55
)

// the temperature register has a resolution of 0.03125 degC. the lowest three
// bits of the LSB are always zero.
const temperatureFraction = 0xf8

// EncodeTemperature converts degrees Celsius to the two byte temperature
// register. Values outside of the device range are clamped. NaN is encoded as
// zero.
func EncodeTemperature(degC float32) [2]uint8 {
	if math.IsNaN(float64(degC)) {
		return [2]uint8{}
	}

	v := float64(degC) * 256.0
	v = math.Max(v, TemperatureMin*256)
	v = math.Min(v, TemperatureMax*256)

	// conversion truncates towards zero
	n := int16(v)

	return [2]uint8{uint8(n) & temperatureFraction, uint8(n >> 8)}
}

// EncodeTemperatureInt converts whole degrees Celsius to the two byte
// temperature register. Values outside of the device range are clamped and the
// fractional byte is zero.
func EncodeTemperatureInt(degC int8) [2]uint8 {
	if degC > TemperatureMax {
		degC = TemperatureMax
	} else if degC < TemperatureMin {
		degC = TemperatureMin
	}
	return [2]uint8{0x00, uint8(degC)}
}

// DecodeTemperature returns the whole degree part of the temperature register.
// For negative values with a fractional part this is the next lowest whole
// degree.
func DecodeTemperature(b [2]uint8) int8 {
	return int8(b[1])
}

// DecodeTemperatureFloat returns the full precision of the temperature
// register in degrees Celsius.
func DecodeTemperatureFloat(b [2]uint8) float32 {
	return float32(int16(uint16(b[1])<<8|uint16(b[0]))) / 256.0
}

// voltages are unsigned 10 bit values in units of 10mV.
const voltageMask = 0x03ff

// EncodeVoltage converts a voltage in units of 10mV to the two byte, little
// endian register format. Only the lowest 10 bits of the value are kept.
func EncodeVoltage(v10mV uint16) [2]uint8 {
	v10mV &= voltageMask
	return [2]uint8{uint8(v10mV), uint8(v10mV >> 8)}
}

// DecodeVoltage is the inverse of EncodeVoltage(). Bits above the 10 bit range
// are ignored.
func DecodeVoltage(b [2]uint8) uint16 {
	return (uint16(b[1])<<8 | uint16(b[0])) & voltageMask
}

// EncodeCurrent converts a signed current value to the two byte register
// format. The low byte and the two lowest bits of the high byte are taken from
// the value. The remaining six bits of the high byte are the sign.
func EncodeCurrent(v int16) [2]uint8 {
	b := [2]uint8{uint8(v), uint8(v>>8) & 0x03}
	if v < 0 {
		b[1] |= 0xfc
	}
	return b
}

// DecodeCurrent is the inverse of EncodeCurrent(). The high byte is already
// sign extended by the encoder so the register value is used directly.
func DecodeCurrent(b [2]uint8) int16 {
	return int16(uint16(b[1])<<8 | uint16(b[0]))
}
