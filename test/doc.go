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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectSuccess() type functions report a test error
// on failure but allow the test to continue. The Demand*() variants end the
// test immediately.
//
// The ExpectSuccess() and ExpectFailure() functions accept bool or error
// values. For an error a success is nil, for a bool success is true.
//
// The CompareWriter type is useful for capturing output from functions that
// write to an io.Writer.
package test
