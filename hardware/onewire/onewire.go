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

// Transport is the device's view of the bus for the duration of a single
// transaction.
type Transport interface {
	// Receive fills buf with bytes sent by the bus host. A non-nil error
	// means the transaction has been interrupted and buf contents are not
	// valid.
	Receive(buf []byte) error

	// Send transmits buf to the bus host. A non-nil error means the
	// transaction has been interrupted.
	Send(buf []byte) error

	// ReportError is called by the device when the host sends a function
	// command that the device does not recognise.
	ReportError(cmd uint8)
}

// Device is implemented by every emulated slave device.
type Device interface {
	// HandleTransaction is called once per bus transaction, after the device
	// has been selected. It returns when the transaction is complete or has
	// been interrupted.
	HandleTransaction(bus Transport)

	// ROM returns the identity of the device as seen by the search layer.
	ROM() ROM
}
