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


package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/gopher3000/curated"
	"github.com/jetsetilly/gopher3000/gui"
	"github.com/jetsetilly/gopher3000/gui/sdlplay"
	"github.com/jetsetilly/gopher3000/hardware"
	"github.com/jetsetilly/gopher3000/hardware/config"
	"github.com/jetsetilly/gopher3000/hardware/govern"
	"github.com/jetsetilly/gopher3000/hardware/gpio"
	"github.com/jetsetilly/gopher3000/hardware/lcd"
	"github.com/jetsetilly/gopher3000/hardware/preferences"
	"github.com/jetsetilly/gopher3000/hardware/rom"
	"github.com/jetsetilly/gopher3000/logger"
	"github.com/jetsetilly/gopher3000/macro"
	"github.com/jetsetilly/gopher3000/modalflag"
	"github.com/jetsetilly/gopher3000/monitor"
	"github.com/jetsetilly/gopher3000/monitor/terminal/easyterm"
	"github.com/jetsetilly/gopher3000/monitor/terminal/plainterm"
	"github.com/jetsetilly/gopher3000/paths"
	"github.com/jetsetilly/gopher3000/performance"
	"github.com/jetsetilly/gopher3000/prefs"
	"github.com/jetsetilly/gopher3000/statsview"
	"github.com/jetsetilly/gopher3000/userinput"
	"github.com/jetsetilly/gopher3000/version"
)

// name of the nvram file in the resource directory.
const defaultNVRAMFile = "nvram"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop the default interrupt signal handling. used when the mode
	// provides its own handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	runtime.LockOSThread()

	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var current GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if current != nil {
				current.Destroy(os.Stderr)
			}

			current, err = creator()
			if err != nil {
				sync.creationError <- err

				// an interface holding a nil pointer is not itself nil
				current = nil
			} else {
				sync.creation <- current
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if current != nil {
					current.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				// only the channel of the default handler is stopped. the
				// handler of the mode is not affected
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if current != nil {
				current.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "MONITOR", "SCRIPT", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "MONITOR":
		err = monitorMode(md)

	case "SCRIPT":
		err = script(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags shared by every mode.
type commonFlags struct {
	log       *bool
	prefs     *string
	nvram     *string
	statsview *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	cf := commonFlags{
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
		prefs: md.AddString("prefs", "", "preferences for this session. eg. \"sdlplay.scale::4; nvram.autosave::false\""),
		nvram: md.AddString("nvram", "", "nvram file. the default is in the resource directory"),
	}

	if statsview.Available() {
		cf.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	return cf
}

// session is the machine and the supporting values that every mode
// requires.
type session struct {
	m         *hardware.Machine
	prefs     *preferences.Preferences
	nvramFile string
}

// newSession creates the machine from the ROM named by the first remaining
// argument. NVRAM is restored from disk.
func newSession(md *modalflag.Modes, cf commonFlags) (*session, error) {
	if *cf.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if cf.statsview != nil && *cf.statsview {
		statsview.Launch(os.Stdout)
	}

	if len(md.RemainingArgs()) == 0 {
		return nil, curated.Errorf("rom required for %s mode", md)
	}

	prefs.PushCommandLineStack(*cf.prefs)
	prf, err := preferences.NewPreferences("")
	if err != nil {
		prefs.PopCommandLineStack()
		return nil, err
	}
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
	}

	r, err := rom.Load(md.GetArg(0))
	if err != nil {
		return nil, err
	}

	m, err := hardware.NewMachine(config.Default(), r, nil, [gpio.NumControllers]lcd.Controller{})
	if err != nil {
		return nil, err
	}

	s := &session{
		m:         m,
		prefs:     prf,
		nvramFile: *cf.nvram,
	}

	if s.nvramFile == "" {
		s.nvramFile, err = paths.ResourcePath("", defaultNVRAMFile)
		if err != nil {
			return nil, err
		}
	}

	err = m.LoadNVRAM(s.nvramFile)
	if err != nil {
		return nil, err
	}

	// the loaded NVRAM replaces the seed made by NewMachine()
	err = m.Reset()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// end the session. NVRAM is saved if the preferences say so and if it has
// changed since it was loaded.
func (s *session) end() error {
	if !s.prefs.AutoSaveNVRAM.Get().(bool) || !s.m.NVRAM.Dirty() {
		return nil
	}
	return s.m.SaveNVRAM(s.nvramFile)
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	cf := addCommonFlags(md)
	scaling := md.AddInt("scale", 0, "window scaling. the default is the preferences value")
	fpsCap := md.AddBool("fpscap", true, "cap fps to the refresh rate of the machine")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := newSession(md, cf)
	if err != nil {
		return err
	}

	scale := *scaling
	if scale == 0 {
		scale = s.prefs.Scale.Get().(int)
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(s.m.Config, scale)
	}

	// wait for creator result
	var scr *sdlplay.SdlPlay
	select {
	case g := <-sync.creation:
		scr = g.(*sdlplay.SdlPlay)
	case err := <-sync.creationError:
		return err
	}

	// the play loop has its own interrupt handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	sync.state <- stateRequest{req: reqNoIntSig}

	events := make(chan userinput.Event, 16)

	err = scr.SetFeature(gui.ReqSetEventChan, events)
	if err != nil {
		return err
	}
	err = scr.SetFeature(gui.ReqSetFPSCap, *fpsCap && s.prefs.FPSCap.Get().(bool))
	if err != nil {
		return err
	}
	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	s.m.OnFrame = scr.NewFrame

	err = s.m.Run(func() (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		case ev := <-events:
			if userinput.HandleUserInput(ev, s.m.Keyboard) {
				return govern.Ending, nil
			}
		default:
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	return s.end()
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()

	cf := addCommonFlags(md)
	hold := md.AddInt("hold", userinput.DefaultHold, "number of frames a key is held by the KEY and TYPE commands")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := newSession(md, cf)
	if err != nil {
		return err
	}

	term := plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
	err = term.Initialise()
	if err != nil {
		return err
	}
	defer term.CleanUp()

	mon := monitor.NewMonitor(s.m, term, s.prefs)
	mon.NVRAMFile = s.nvramFile
	mon.Hold = *hold

	// the KEYS command requires a real terminal for key by key input
	if term.IsInteractive() {
		keys, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
		if err != nil {
			logger.Logf(logger.Allow, "monitor", "KEYS command unavailable: %v", err)
		} else {
			mon.Keys = keys
			defer keys.CanonicalMode()
		}
	}

	err = mon.Run()
	if err != nil {
		return err
	}

	return s.end()
}

func script(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments: rom script")

	cf := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return curated.Errorf("rom and script file required for %s mode", md)
	}

	s, err := newSession(md, cf)
	if err != nil {
		return err
	}

	mcr := macro.NewMacro(s.m)
	defer mcr.Close()
	mcr.ScreenshotScale = s.prefs.ScreenshotScale.Get().(int)

	err = mcr.Run(md.GetArg(1))
	if err != nil {
		return err
	}

	return s.end()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	cf := addCommonFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	s, err := newSession(md, cf)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, s.m, *duration)
}
