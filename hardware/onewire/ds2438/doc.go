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

// Package ds2438 emulates the slave side of the DS2438 smart battery monitor.
//
// The device answers six function commands: Read Scratchpad, Write
// Scratchpad, Copy Scratchpad, Recall Memory, Convert T and Convert V. The
// scratchpad is emulated as up to eight pages of eight bytes, each page with a
// cached CRC8 that is recalculated whenever the page changes.
//
// There is no EEPROM behind the scratchpad. Copy Scratchpad and Recall Memory
// are accepted by the device but have no effect. Nor is there an analogue to
// digital converter. The owning application supplies measurements through
// SetTemperature(), SetVDDVoltage(), SetVADVoltage() and SetCurrent(). The
// temperature and current setters write page 0 immediately. The voltage
// setters stage a value that is copied into page 0 by a Convert V command
// according to the AD bit of the status/configuration register.
//
// The busy flags in the status/configuration register are never set by the
// emulation.
//
// The DS2438 type is not safe for concurrent use. Transactions and setter
// calls must come from the same goroutine or be serialised by the caller.
package ds2438
