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

// Package logger is the central log for the application. Emulated devices and
// transports report noteworthy protocol events here rather than to stdout.
//
// Log entries are made with Log() or Logf(). The first argument to both is a
// Permission implementation. Components that might be muted (by a command line
// flag for example) should carry their own Permission; otherwise use Allow.
//
//	logger.Logf(logger.Allow, "ds2438", "write scratchpad: page %d", page)
//
// Identical adjacent entries are folded into a single entry with a repeat
// count. The central log holds a fixed maximum number of entries, the oldest
// entries being dropped first.
package logger
