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

// Package transport contains implementations of the onewire.Transport
// interface.
//
// The Stream type carries transactions over any io.ReadWriter. The Serial type
// is a Stream connected to a serial port bus adapter. In both cases there is
// no out-of-band reset signal. A Stream constructed with NewIdleStream() treats
// a period of inactivity on the line as the end of the current transaction.
//
// The Script type plays back a fixed sequence of host bytes and records the
// device's responses. It is used by the SCRIPT mode of the wirehub program and
// in testing. ParseScript() reads script files, one transaction per line:
//
//	# read page 0
//	be 00
//
//	# write page 1, but only the first three bytes
//	4e 01 aa bb cc
package transport
