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

package transport_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/wirehub/curated"
	"github.com/jetsetilly/wirehub/hardware/onewire/transport"
	"github.com/jetsetilly/wirehub/logger"
	"github.com/jetsetilly/wirehub/test"
)

// line is a fake serial line. reads come from the host buffer and writes go to
// the device buffer. when the host buffer is empty a read returns no data,
// like a serial port with a read timeout. once idle reaches zero the line
// fails permanently
type line struct {
	host   *bytes.Buffer
	device bytes.Buffer
	idle   int
}

var errUnplugged = errors.New("unplugged")

func (l *line) Read(p []uint8) (int, error) {
	if l.host.Len() == 0 {
		if l.idle <= 0 {
			return 0, errUnplugged
		}
		l.idle--
		return 0, nil
	}
	return l.host.Read(p)
}

func (l *line) Write(p []uint8) (int, error) {
	return l.device.Write(p)
}

func TestStream(t *testing.T) {
	l := &line{host: bytes.NewBuffer([]uint8{0x01, 0x02})}
	s := transport.NewStream(logger.Deny, l)

	var b [2]uint8
	test.ExpectSuccess(t, s.Receive(b[:]))
	test.ExpectEquality(t, b, [2]uint8{0x01, 0x02})

	test.ExpectSuccess(t, s.Send([]uint8{0x03}))
	test.ExpectEquality(t, l.device.String(), string([]uint8{0x03}))

	err := s.Receive(b[:])
	test.ExpectSuccess(t, curated.Is(err, transport.ReceiveFailed))
	test.ExpectSuccess(t, errors.Is(err, errUnplugged))

	s.ReportError(0x99)
	test.ExpectEquality(t, s.Errors, 1)
}

type shortWriter struct {
	io.Reader
}

func (shortWriter) Write(p []uint8) (int, error) {
	return len(p) / 2, nil
}

func TestStreamShortWrite(t *testing.T) {
	s := transport.NewStream(logger.Deny, shortWriter{})
	err := s.Send([]uint8{1, 2})
	test.ExpectSuccess(t, curated.Is(err, transport.SendFailed))
	test.ExpectSuccess(t, errors.Is(err, io.ErrShortWrite))
}

func TestServe(t *testing.T) {
	// two transactions separated by idle periods, the line is then unplugged
	l := &line{host: bytes.NewBuffer([]uint8{0x10, 0x00}), idle: 3}
	s := transport.NewIdleStream(logger.Deny, l)

	err := transport.Serve(context.Background(), echo{}, s)
	test.ExpectSuccess(t, errors.Is(err, errUnplugged))
	test.ExpectEquality(t, l.device.String(), string([]uint8{0x10}))
	test.ExpectEquality(t, s.Errors, 1)
}

func TestServeCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := &line{host: bytes.NewBuffer([]uint8{0x10})}
	s := transport.NewIdleStream(logger.Deny, l)

	err := transport.Serve(ctx, echo{}, s)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.ExpectEquality(t, l.device.Len(), 0)
}
