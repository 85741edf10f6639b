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

// Package preferences holds the configuration of an emulated DS2438: the
// identity and size of the device and the measurements it reports.
//
// Values are taken from the most recent prefs command line group when the
// Preferences type is created. Once plumbed into a device with Plumb(), any
// change to a measurement preference is passed to the device immediately.
package preferences
