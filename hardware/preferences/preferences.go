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

package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/wirehub/hardware/onewire"
	"github.com/jetsetilly/wirehub/hardware/onewire/ds2438"
	"github.com/jetsetilly/wirehub/prefs"
)

// Device is the part of the emulated device that is driven by preferences.
type Device interface {
	SetTemperature(degC float32)
	SetVDDVoltage(v10mV uint16)
	SetVADVoltage(v10mV uint16)
	SetCurrent(v int16)
	SelectVDD(vdd bool)
}

// Preferences for the emulated device.
type Preferences struct {
	// ROM code in canonical form. the checksum part can be "--"
	ROM prefs.String

	// number of emulated scratchpad pages
	Pages prefs.Int

	// measurements reported by the device
	Temperature prefs.Float
	VDD         prefs.Int
	VAD         prefs.Int
	Current     prefs.Int

	// whether the battery input is selected for Convert V
	BatteryInput prefs.Bool
}

// keys used on the command line.
const (
	keyROM          = "rom"
	keyPages        = "pages"
	keyTemperature  = "temperature"
	keyVDD          = "vdd"
	keyVAD          = "vad"
	keyCurrent      = "current"
	keyBatteryInput = "battery"
)

// default values.
const (
	defaultROM          = "26.00da24380000.--"
	defaultPages        = ds2438.MaxPages
	defaultTemperature  = 20.0
	defaultVDD          = 420
	defaultVAD          = 0
	defaultCurrent      = 0
	defaultBatteryInput = true
)

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Defaults are set and then overridden by any values in the current
// prefs command line group.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.ROM.SetHookPre(func(v prefs.Value) error {
		_, err := onewire.ParseROM(v.(string))
		return err
	})
	p.Pages.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 1 || n > ds2438.MaxPages {
			return fmt.Errorf("preferences: pages must be between 1 and %d", ds2438.MaxPages)
		}
		return nil
	})
	p.Temperature.SetHookPre(func(v prefs.Value) error {
		if t := v.(float64); t < ds2438.TemperatureMin || t > ds2438.TemperatureMax {
			return fmt.Errorf("preferences: temperature must be between %d and %d", ds2438.TemperatureMin, ds2438.TemperatureMax)
		}
		return nil
	})
	voltage := func(v prefs.Value) error {
		if n := v.(int); n < 0 || n > 0x3ff {
			return fmt.Errorf("preferences: voltage must be between 0 and 1023")
		}
		return nil
	}
	p.VDD.SetHookPre(voltage)
	p.VAD.SetHookPre(voltage)
	p.Current.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < -1024 || n > 1023 {
			return fmt.Errorf("preferences: current must be between -1024 and 1023")
		}
		return nil
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	for _, c := range []struct {
		key  string
		pref prefs.Pref
	}{
		{keyROM, &p.ROM},
		{keyPages, &p.Pages},
		{keyTemperature, &p.Temperature},
		{keyVDD, &p.VDD},
		{keyVAD, &p.VAD},
		{keyCurrent, &p.Current},
		{keyBatteryInput, &p.BatteryInput},
	} {
		if ok, v := prefs.GetCommandLinePref(c.key); ok {
			if err := c.pref.Set(v); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	for _, err := range []error{
		p.ROM.Set(defaultROM),
		p.Pages.Set(defaultPages),
		p.Temperature.Set(defaultTemperature),
		p.VDD.Set(defaultVDD),
		p.VAD.Set(defaultVAD),
		p.Current.Set(defaultCurrent),
		p.BatteryInput.Set(defaultBatteryInput),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// ID returns the seven identity bytes from the ROM preference.
func (p *Preferences) ID() ([7]uint8, error) {
	var id [7]uint8
	rom, err := onewire.ParseROM(p.ROM.String())
	if err != nil {
		return id, err
	}
	copy(id[:], rom[:7])
	return id, nil
}

// Plumb pushes the measurement preferences into the device and arranges for
// any future changes to be pushed too.
func (p *Preferences) Plumb(dev Device) {
	p.Temperature.SetHookPost(func(v prefs.Value) error {
		dev.SetTemperature(float32(v.(float64)))
		return nil
	})
	p.VDD.SetHookPost(func(v prefs.Value) error {
		dev.SetVDDVoltage(uint16(v.(int)))
		return nil
	})
	p.VAD.SetHookPost(func(v prefs.Value) error {
		dev.SetVADVoltage(uint16(v.(int)))
		return nil
	})
	p.Current.SetHookPost(func(v prefs.Value) error {
		dev.SetCurrent(int16(v.(int)))
		return nil
	})
	p.BatteryInput.SetHookPost(func(v prefs.Value) error {
		dev.SelectVDD(v.(bool))
		return nil
	})

	dev.SetTemperature(float32(p.Temperature.Get().(float64)))
	dev.SetVDDVoltage(uint16(p.VDD.Get().(int)))
	dev.SetVADVoltage(uint16(p.VAD.Get().(int)))
	dev.SetCurrent(int16(p.Current.Get().(int)))
	dev.SelectVDD(p.BatteryInput.Get().(bool))
}

func (p *Preferences) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s::%s; ", keyROM, p.ROM.String()))
	s.WriteString(fmt.Sprintf("%s::%s; ", keyPages, p.Pages.String()))
	s.WriteString(fmt.Sprintf("%s::%s; ", keyTemperature, p.Temperature.String()))
	s.WriteString(fmt.Sprintf("%s::%s; ", keyVDD, p.VDD.String()))
	s.WriteString(fmt.Sprintf("%s::%s; ", keyVAD, p.VAD.String()))
	s.WriteString(fmt.Sprintf("%s::%s; ", keyCurrent, p.Current.String()))
	s.WriteString(fmt.Sprintf("%s::%s", keyBatteryInput, p.BatteryInput.String()))
	return s.String()
}
