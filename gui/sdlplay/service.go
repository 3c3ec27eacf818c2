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


package sdlplay

import (
	"github.com/jetsetilly/gopher3000/logger"
	"github.com/jetsetilly/gopher3000/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// time in milliseconds to wait for an SDL event on each call to Service().
const serviceTimeout = 1

// Service implements gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() {
	for ev := sdl.WaitEventTimeout(serviceTimeout); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.send(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			// the machine has no use for key repeat
			if ev.Repeat != 0 {
				break
			}

			mod := userinput.KeyModNone
			if ev.Keysym.Mod&sdl.KMOD_LALT == sdl.KMOD_LALT || ev.Keysym.Mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = userinput.KeyModAlt
			} else if ev.Keysym.Mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || ev.Keysym.Mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = userinput.KeyModShift
			} else if ev.Keysym.Mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || ev.Keysym.Mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = userinput.KeyModCtrl
			}

			scr.send(userinput.EventKeyboard{
				Key:  sdl.GetKeyName(ev.Keysym.Sym),
				Mod:  mod,
				Down: ev.Type == sdl.KEYDOWN,
			})
		}
	}

	select {
	case r := <-scr.featureReq:
		scr.serviceFeatureRequest(r)
	default:
	}

	select {
	case px := <-scr.frame:
		if err := scr.present(px); err != nil {
			logger.Logf(logger.Allow, "sdlplay", "%v", err)
		}
	default:
	}
}

// send event to the event channel without blocking. events are discarded if
// no event channel has been set.
func (scr *SdlPlay) send(ev userinput.Event) {
	if scr.eventChannel == nil {
		return
	}
	select {
	case scr.eventChannel <- ev:
	default:
		logger.Logf(logger.Allow, "sdlplay", "dropped input event (%T)", ev)
	}
}
