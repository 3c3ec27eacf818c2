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
	"fmt"
	"image/color"
	"io"
	"sync/atomic"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/hardware/config"
	"github.com/jetsetilly/gopher3000/hardware/display"
	"github.com/jetsetilly/gopher3000/hardware/lcd"
	"github.com/jetsetilly/gopher3000/logger"
	"github.com/jetsetilly/gopher3000/performance/limiter"
	"github.com/jetsetilly/gopher3000/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// number of bytes in each pixel of the texture.
const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// size of the screen in pixels. the window is this size multiplied by
	// the scale value
	width  int32
	height int32
	scale  int

	palette [2]color.RGBA

	// frames are sent from the emulation goroutine. the channel has room for
	// one frame only and a stale frame is replaced by a newer one
	frame chan []byte

	// limit emulation to the refresh rate of the machine
	lmtr   *limiter.FpsLimiter
	fpsCap atomic.Bool

	// user input is sent to this channel. only ever accessed from the main
	// thread
	eventChannel chan userinput.Event

	// feature requests are made from the emulation goroutine and serviced on
	// the main thread
	featureReq chan featureRequest
	featureErr chan error
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(cfg config.Machine, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{
		width:      int32(cfg.ScreenWidth),
		height:     int32(cfg.ScreenHeight),
		palette:    cfg.Palette,
		frame:      make(chan []byte, 1),
		lmtr:       limiter.NewFPSLimiter(cfg.RefreshRate),
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
	}
	scr.fpsCap.Store(true)

	if scale < 1 {
		scale = 1
	}
	scr.scale = scale

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the window is hidden until a ReqSetVisibility request is made
	scr.window, err = sdl.CreateWindow(cfg.Name,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		scr.width*int32(scr.scale), scr.height*int32(scr.scale),
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy(nil)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), scr.width, scr.height)
	if err != nil {
		scr.Destroy(nil)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// mouse motion is of no interest and fills the event queue very quickly
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	logger.Logf(logger.Allow, "sdlplay", "window created (%dx%d scale %d)", scr.width, scr.height, scr.scale)

	return scr, nil
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	scr.lmtr.Stop()

	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil && output != nil {
			output.Write([]byte(fmt.Sprintf("sdlplay: %v\n", err)))
		}
		scr.texture = nil
	}

	if scr.renderer != nil {
		if err := scr.renderer.Destroy(); err != nil && output != nil {
			output.Write([]byte(fmt.Sprintf("sdlplay: %v\n", err)))
		}
		scr.renderer = nil
	}

	if scr.window != nil {
		if err := scr.window.Destroy(); err != nil && output != nil {
			output.Write([]byte(fmt.Sprintf("sdlplay: %v\n", err)))
		}
		scr.window = nil
	}

	sdl.Quit()
}

// NewFrame converts the screen to pixels and queues them for presentation by
// the main thread. The frame is dropped if the main thread has not yet
// presented the previous frame. If the frame rate is capped the function
// waits for the limiter before returning.
//
// Suitable for use as the OnFrame callback of the hardware.Machine type.
func (scr *SdlPlay) NewFrame(bmp *lcd.Bitmap) {
	img := display.Image(bmp, scr.palette[:])

	select {
	case scr.frame <- img.Pix:
	default:
		// replace the queued frame
		select {
		case <-scr.frame:
		default:
		}
		select {
		case scr.frame <- img.Pix:
		default:
		}
	}

	if scr.fpsCap.Load() {
		scr.lmtr.Wait()
	}
}

// resize the window to fit the screen at the current scale.
func (scr *SdlPlay) resize() {
	scr.window.SetSize(scr.width*int32(scr.scale), scr.height*int32(scr.scale))
}

// present pixels to the window.
func (scr *SdlPlay) present(pixels []byte) error {
	dst, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return err
	}

	w := int(scr.width) * pixelDepth
	for y := 0; y < int(scr.height); y++ {
		copy(dst[y*pitch:y*pitch+w], pixels[y*w:(y+1)*w])
	}
	scr.texture.Unlock()

	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	// the texture is stretched to fill the window
	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}
