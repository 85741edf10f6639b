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

package transport

import (
	"time"

	"github.com/pkg/term"

	"github.com/jetsetilly/wirehub/curated"
	"github.com/jetsetilly/wirehub/logger"
)

// Sentinal error patterns for the serial port.
const (
	SerialOpen = "serial: cannot open %s: %v"
)

// Serial is a Stream connected to a serial port.
type Serial struct {
	*Stream
	port *term.Term
	name string
}

// OpenSerial opens the named serial port in raw mode at the requested speed.
// The timeout is the period of line inactivity after which the current
// transaction is considered to have ended.
func OpenSerial(perm logger.Permission, name string, baud int, timeout time.Duration) (*Serial, error) {
	port, err := term.Open(name, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, curated.Errorf(SerialOpen, name, err)
	}

	err = port.SetReadTimeout(timeout)
	if err != nil {
		_ = port.Close()
		return nil, curated.Errorf(SerialOpen, name, err)
	}

	// discard anything sent before we were listening
	_ = port.Flush()

	logger.Logf(perm, logTag, "opened %s at %d baud", name, baud)

	return &Serial{
		Stream: NewIdleStream(perm, port),
		port:   port,
		name:   name,
	}, nil
}

// Close the serial port.
func (s *Serial) Close() error {
	logger.Logf(s.perm, logTag, "closing %s", s.name)
	return s.port.Close()
}
