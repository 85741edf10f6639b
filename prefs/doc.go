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

// Package prefs provides typed preference values. Each value can be set from a
// Go value of the correct type or from a string, which is how values arrive
// from the command line.
//
// Hooks can be attached to a value to be run immediately before and after the
// value changes. A pre-hook can prevent the change by returning an error. A
// post-hook is the usual way of pushing the new value into the component that
// uses it.
//
// The command line stack allows a program to accept a single string of
// preferences of the form:
//
//	temperature::21.5; vdd::500
//
// Preferences structures call GetCommandLinePref() when they initialise to
// pick up values from the most recently pushed group.
package prefs
