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
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/wirehub/curated"
	"github.com/jetsetilly/wirehub/hardware/onewire"
)

// Sentinal error patterns for scripts.
const (
	EndOfScript  = "script: end of transaction"
	SendRefused  = "script: send refused"
	ScriptSyntax = "script: line %d: %v"
)

// Script is an implementation of the onewire.Transport interface that plays
// back the bytes sent by the host in a single transaction. Receiving past the
// end of the host bytes fails in the same way as a bus reset.
type Script struct {
	// bytes sent by the host and the number consumed by the device
	Host     []uint8
	Consumed int

	// bytes sent by the device in response
	Response []uint8

	// commands reported as unrecognised by the device
	Errors []uint8

	// the number of bytes the device can send before Send() fails. a negative
	// value means there is no limit
	sendLimit int
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(host ...uint8) *Script {
	return &Script{
		Host:      host,
		sendLimit: -1,
	}
}

// LimitSend causes Send() to fail once the device has sent n bytes. Any bytes
// that fit in the limit are recorded in the Response field.
func (s *Script) LimitSend(n int) {
	s.sendLimit = n
}

// Receive implements the onewire.Transport interface.
func (s *Script) Receive(buf []uint8) error {
	if s.Consumed+len(buf) > len(s.Host) {
		s.Consumed = len(s.Host)
		return curated.Errorf(EndOfScript)
	}
	s.Consumed += copy(buf, s.Host[s.Consumed:])
	return nil
}

// Send implements the onewire.Transport interface.
func (s *Script) Send(buf []uint8) error {
	if s.sendLimit >= 0 && len(s.Response)+len(buf) > s.sendLimit {
		s.Response = append(s.Response, buf[:s.sendLimit-len(s.Response)]...)
		return curated.Errorf(SendRefused)
	}
	s.Response = append(s.Response, buf...)
	return nil
}

// ReportError implements the onewire.Transport interface.
func (s *Script) ReportError(cmd uint8) {
	s.Errors = append(s.Errors, cmd)
}

func (s *Script) String() string {
	b := strings.Builder{}
	b.WriteString(hexBytes(s.Host))
	b.WriteString(" ->")
	if len(s.Response) > 0 {
		b.WriteString(" ")
		b.WriteString(hexBytes(s.Response))
	}
	for _, e := range s.Errors {
		b.WriteString(fmt.Sprintf(" [unrecognised %02x]", e))
	}
	return b.String()
}

func hexBytes(d []uint8) string {
	s := make([]string, len(d))
	for i := range d {
		s[i] = fmt.Sprintf("%02x", d[i])
	}
	return strings.Join(s, " ")
}

// ParseScript reads one transaction per line. Each line is a sequence of hex
// bytes separated by white space. Anything following a '#' is a comment.
// Blank lines are ignored.
func ParseScript(r io.Reader) ([][]uint8, error) {
	var transactions [][]uint8

	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++

		l, _, _ := strings.Cut(scanner.Text(), "#")
		fields := strings.Fields(l)
		if len(fields) == 0 {
			continue
		}

		t := make([]uint8, 0, len(fields))
		for _, f := range fields {
			if len(f) != 2 {
				return nil, curated.Errorf(ScriptSyntax, ln, fmt.Sprintf("not a byte (%s)", f))
			}
			b, err := hex.DecodeString(f)
			if err != nil {
				return nil, curated.Errorf(ScriptSyntax, ln, err)
			}
			t = append(t, b[0])
		}
		transactions = append(transactions, t)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(ScriptSyntax, ln, err)
	}

	return transactions, nil
}

// Play runs each transaction against the device in order and returns the
// completed scripts.
func Play(dev onewire.Device, transactions [][]uint8) []*Script {
	played := make([]*Script, 0, len(transactions))
	for _, t := range transactions {
		s := NewScript(t...)
		dev.HandleTransaction(s)
		played = append(played, s)
	}
	return played
}
