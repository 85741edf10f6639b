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
	"context"
	"io"

	"github.com/jetsetilly/wirehub/curated"
	"github.com/jetsetilly/wirehub/hardware/onewire"
	"github.com/jetsetilly/wirehub/logger"
)

// Sentinal error patterns.
const (
	ReceiveFailed = "transport: receive: %v"
	SendFailed    = "transport: send: %v"
	BusIdle       = "bus idle"
)

// logging tag for all transports.
const logTag = "onewire"

// Stream is an implementation of the onewire.Transport interface for a byte
// stream.
type Stream struct {
	perm logger.Permission
	rw   io.ReadWriter

	// the most recent error from the underlying io.ReadWriter. reset at the
	// start of every transaction by Serve()
	err error

	// number of unrecognised commands reported by the device
	Errors int
}

// NewStream is the preferred method of initialisation for the Stream type.
func NewStream(perm logger.Permission, rw io.ReadWriter) *Stream {
	return &Stream{
		perm: perm,
		rw:   rw,
	}
}

// Receive implements the onewire.Transport interface.
func (s *Stream) Receive(buf []uint8) error {
	if _, err := io.ReadFull(s.rw, buf); err != nil {
		s.err = curated.Errorf(ReceiveFailed, err)
		return s.err
	}
	return nil
}

// Send implements the onewire.Transport interface.
func (s *Stream) Send(buf []uint8) error {
	n, err := s.rw.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.err = curated.Errorf(SendFailed, err)
		return s.err
	}
	return nil
}

// ReportError implements the onewire.Transport interface. A byte stream has
// no way of signalling the error to the host so it is logged and counted.
func (s *Stream) ReportError(cmd uint8) {
	s.Errors++
	logger.Logf(s.perm, logTag, "device reported unrecognised command %#02x", cmd)
}

// Serve runs transactions on the device until the context is done or the
// stream fails for any reason other than the bus being idle.
func Serve(ctx context.Context, dev onewire.Device, s *Stream) error {
	logger.Logf(s.perm, logTag, "serving %v", dev.ROM())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.err = nil
		dev.HandleTransaction(s)

		if s.err != nil && !curated.Has(s.err, BusIdle) {
			logger.Log(s.perm, logTag, s.err)
			return s.err
		}
	}
}

// idleReader converts reads that return no data into a BusIdle error. For the
// purposes of a Stream an idle bus is the same as a bus reset.
type idleReader struct {
	io.ReadWriter
}

func (r idleReader) Read(p []uint8) (int, error) {
	n, err := r.ReadWriter.Read(p)
	if n == 0 && len(p) > 0 && (err == nil || err == io.EOF) {
		return 0, curated.Errorf(BusIdle)
	}
	return n, err
}

// NewIdleStream creates a Stream for an io.ReadWriter that returns from Read()
// with no data when the line has been inactive. For example, a serial port
// with a read timeout.
func NewIdleStream(perm logger.Permission, rw io.ReadWriter) *Stream {
	return NewStream(perm, idleReader{ReadWriter: rw})
}
