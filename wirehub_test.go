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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/wirehub/modalflag"
	"github.com/jetsetilly/wirehub/test"
)

func modes(args ...string) *modalflag.Modes {
	md := &modalflag.Modes{}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "SCRIPT", "DUMP")
	return md
}

func TestScriptMode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "transactions")
	err := os.WriteFile(fn, []byte(`# default device
12
b4          # convert V selects VDD by default
be 00
be 08       # out of range
`), 0o644)
	test.DemandSuccess(t, err)

	md := modes("SCRIPT", fn)
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SCRIPT")

	w := &test.CompareWriter{}
	test.DemandSuccess(t, script(md, w))
	test.ExpectSuccess(t, w.Compare(`12 -> [unrecognised 12]
b4 ->
be 00 -> 0b 00 14 a4 01 00 00 00 cb
be 08 ->
`))
}

func TestScriptModeArguments(t *testing.T) {
	md := modes("SCRIPT")
	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, script(md, &test.CompareWriter{}))

	md = modes("SCRIPT", "a", "b")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, script(md, &test.CompareWriter{}))

	md = modes("SCRIPT", filepath.Join(t.TempDir(), "missing"))
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, script(md, &test.CompareWriter{}))
}

func TestDumpMode(t *testing.T) {
	md := modes("DUMP", "-prefs", "pages::2; temperature::25.0")
	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "DUMP")

	w := &test.CompareWriter{}
	test.DemandSuccess(t, dump(md, w))

	lines := strings.Split(strings.TrimSuffix(w.String(), "\n"), "\n")
	test.DemandEquality(t, len(lines), 4)
	test.ExpectEquality(t, lines[0], "26.00da24380000.80")
	test.ExpectSuccess(t, strings.Contains(lines[1], "pages::2"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "0: 0b 00 19 "))
	test.ExpectSuccess(t, strings.HasPrefix(lines[3], "1: ec ab 23 58"))
}

func TestDumpModeBadPreferences(t *testing.T) {
	md := modes("DUMP", "-prefs", "pages::9")
	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dump(md, &test.CompareWriter{}))

	md = modes("DUMP", "-prefs", "rom::26.00da24380000.00")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dump(md, &test.CompareWriter{}))
}

func TestDumpMemviz(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ds2438.dot")

	md := modes("DUMP", "-memviz", fn)
	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dump(md, &test.CompareWriter{}))

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))
}
