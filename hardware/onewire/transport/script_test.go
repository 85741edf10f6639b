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
	"strings"
	"testing"

	"github.com/jetsetilly/wirehub/curated"
	"github.com/jetsetilly/wirehub/hardware/onewire"
	"github.com/jetsetilly/wirehub/hardware/onewire/transport"
	"github.com/jetsetilly/wirehub/test"
)

func TestScriptReceive(t *testing.T) {
	s := transport.NewScript(0xbe, 0x00, 0x01)

	var b [2]uint8
	test.ExpectSuccess(t, s.Receive(b[:]))
	test.ExpectEquality(t, b, [2]uint8{0xbe, 0x00})
	test.ExpectEquality(t, s.Consumed, 2)

	// not enough bytes left to satisfy the receive
	err := s.Receive(b[:])
	test.ExpectSuccess(t, curated.Is(err, transport.EndOfScript))
	test.ExpectEquality(t, s.Consumed, 3)

	// and nothing left at all
	err = s.Receive(b[:1])
	test.ExpectFailure(t, err)
}

func TestScriptSend(t *testing.T) {
	s := transport.NewScript()
	test.ExpectSuccess(t, s.Send([]uint8{1, 2, 3}))
	test.ExpectEquality(t, len(s.Response), 3)

	s = transport.NewScript()
	s.LimitSend(4)
	test.ExpectSuccess(t, s.Send([]uint8{1, 2, 3}))
	err := s.Send([]uint8{4, 5, 6})
	test.ExpectSuccess(t, curated.Is(err, transport.SendRefused))
	test.ExpectEquality(t, string(s.Response), string([]uint8{1, 2, 3, 4}))

	s = transport.NewScript()
	s.LimitSend(0)
	test.ExpectFailure(t, s.Send([]uint8{1}))
	test.ExpectEquality(t, len(s.Response), 0)
}

func TestScriptString(t *testing.T) {
	s := transport.NewScript(0x44)
	test.ExpectEquality(t, s.String(), "44 ->")

	s = transport.NewScript(0xbe, 0x00)
	s.Send([]uint8{0x0b, 0xff})
	test.ExpectEquality(t, s.String(), "be 00 -> 0b ff")

	s = transport.NewScript(0x12)
	s.ReportError(0x12)
	test.ExpectEquality(t, s.String(), "12 -> [unrecognised 12]")
}

func TestParseScript(t *testing.T) {
	src := `# comment line
be 00
4e 01 aa BB cc   # trailing comment

44
`
	tr, err := transport.ParseScript(strings.NewReader(src))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(tr), 3)
	test.ExpectEquality(t, string(tr[0]), string([]uint8{0xbe, 0x00}))
	test.ExpectEquality(t, string(tr[1]), string([]uint8{0x4e, 0x01, 0xaa, 0xbb, 0xcc}))
	test.ExpectEquality(t, string(tr[2]), string([]uint8{0x44}))

	_, err = transport.ParseScript(strings.NewReader("be 0"))
	test.ExpectSuccess(t, curated.Is(err, transport.ScriptSyntax))

	_, err = transport.ParseScript(strings.NewReader("be\nzz"))
	test.ExpectSuccess(t, curated.Is(err, transport.ScriptSyntax))
	test.ExpectEquality(t, strings.HasPrefix(err.Error(), "script: line 2"), true)
}

// echo is a minimal device that sends back whatever byte it receives. a zero
// byte is reported as an error.
type echo struct{}

func (echo) HandleTransaction(bus onewire.Transport) {
	var b [1]uint8
	if bus.Receive(b[:]) != nil {
		return
	}
	if b[0] == 0 {
		bus.ReportError(b[0])
		return
	}
	bus.Send(b[:])
}

func (echo) ROM() onewire.ROM {
	return onewire.NewROM([7]uint8{0x01})
}

func TestPlay(t *testing.T) {
	played := transport.Play(echo{}, [][]uint8{{0x10}, {}, {0x00}})
	test.DemandEquality(t, len(played), 3)
	test.ExpectEquality(t, played[0].String(), "10 -> 10")
	test.ExpectEquality(t, played[1].String(), " ->")
	test.ExpectEquality(t, played[2].String(), "00 -> [unrecognised 00]")
}
