// This file is part of Gopher3000.
//
// Gopher3000 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher3000 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher3000.  If not, see <https://www.gnu.org/licenses/>.

package preferences

import (
	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/paths"
	"github.com/jetsetilly/gopher3000/prefs"
)

// Preferences defines and collates all the preference values used by the
// emulator.
type Preferences struct {
	dsk *prefs.Disk

	// save NVRAM to disk when the emulation ends
	AutoSaveNVRAM prefs.Bool

	// scaling applied to screenshots
	ScreenshotScale prefs.Int

	// scaling of the SDL window
	Scale prefs.Int

	// limit the SDL front end to the refresh rate of the LCD
	FPSCap prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If filename is empty then the default preferences file in
// the resource directory is used.
func NewPreferences(filename string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// scaling values less than one make no sense
	clamp := func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("preferences: scale must be 1 or more")
		}
		return nil
	}
	p.ScreenshotScale.SetHookPre(clamp)
	p.Scale.SetHookPre(clamp)

	var err error

	if filename == "" {
		filename, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	p.dsk, err = prefs.NewDisk(filename)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Add("nvram.autosave", &p.AutoSaveNVRAM)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("display.screenshotscale", &p.ScreenshotScale)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("sdlplay.scale", &p.Scale)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("sdlplay.fpscap", &p.FPSCap)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	// errors are not possible with these values
	_ = p.AutoSaveNVRAM.Set(true)
	_ = p.ScreenshotScale.Set(4)
	_ = p.Scale.Set(3)
	_ = p.FPSCap.Set(true)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
