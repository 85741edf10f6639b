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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package except that the pattern is kept
// with the error and can be tested for later. For example:
//
//	e := curated.Errorf("transport: receive failed: %v", io.EOF)
//
//	if curated.Is(e, "transport: receive failed: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function checks whether a pattern occurs anywhere in the error
// chain. A chain is built by passing a curated error as one of the values of
// another curated error:
//
//	e := curated.Errorf("position %d out of range", 300)
//	f := curated.Errorf("ds2438: %v", e)
//
//	curated.Has(f, "position %d out of range") // true
//	curated.Is(f, "position %d out of range")  // false
//
// Patterns that are tested for should be stored as a const string in the
// package that creates the error.
//
// The Error() implementation normalises the message so that duplicate
// adjacent parts are removed. In other words, wrapping an error with the same
// prefix at more than one level of a call stack results in
//
//	serial: could not open port
//
// and not
//
//	serial: serial: could not open port
//
// Parts of a chain are separated by the sub-string ": ".
package curated
