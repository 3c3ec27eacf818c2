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
	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/gui"
	"github.com/jetsetilly/gopher3000/logger"
	"github.com/jetsetilly/gopher3000/userinput"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements gui.GUI interface. The request is serviced by the
// main thread and the function waits for the result.
//
// MUST NOT be called from the main thread.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// MUST ONLY be called from the main thread.
func (scr *SdlPlay) serviceFeatureRequest(request featureRequest) {
	scr.featureErr <- scr.setFeature(request.request, request.args...)
}

func (scr *SdlPlay) setFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (returnedErr error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			returnedErr = curated.Errorf("sdlplay: %v: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqSetVisibility:
		if args[0].(bool) {
			scr.window.Show()
		} else {
			scr.window.Hide()
		}

	case gui.ReqSetScale:
		scale := args[0].(int)
		if scale < 1 {
			return curated.Errorf("sdlplay: %v: scale must be at least 1", request)
		}
		scr.scale = scale
		scr.resize()
		logger.Logf(logger.Allow, "sdlplay", "scale %d", scr.scale)

	case gui.ReqSetFPSCap:
		scr.fpsCap.Store(args[0].(bool))

	case gui.ReqSetEventChan:
		scr.eventChannel = args[0].(chan userinput.Event)

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}
