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

// Package onewire defines the interfaces between an emulated 1-Wire slave
// device and the bus that carries its traffic.
//
// The bus itself (bit timing, reset/presence pulses, ROM search and device
// selection) is the job of a Transport implementation. By the time a Device
// sees a transaction the device has already been selected and the next byte
// to arrive is a function command.
//
// Transport failures are a normal part of bus operation: the host may issue a
// reset at any point or simply stop clocking bytes. Device implementations
// abandon the current transaction when Receive() or Send() return an error and
// do not report the failure any further.
package onewire
