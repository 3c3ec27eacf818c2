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


package gui

// FeatureReq is used to request the setting of a gui attribute
// eg. toggling the frame rate cap.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. argument must be of the type specified or
// else the interface{} type conversion will fail and the request will be
// rejected with an error.
const (
	// whether the gui window is visible or not.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// the scaling applied to each pixel of the screen.
	ReqSetScale FeatureReq = "ReqSetScale" // int

	// whether the frame rate is capped to the refresh rate of the machine.
	ReqSetFPSCap FeatureReq = "ReqSetFPSCap" // bool

	// the channel to which user input events are sent. a nil channel means
	// events are discarded.
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan userinput.Event
)
