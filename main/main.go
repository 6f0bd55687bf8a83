package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adammck/stewart"
	"github.com/adammck/stewart/animation"
	"github.com/adammck/stewart/chart"
	"github.com/adammck/stewart/clock"
	"github.com/adammck/stewart/components/controller"
	"github.com/adammck/stewart/components/motion"
	"github.com/adammck/stewart/config"
	"github.com/adammck/stewart/input"
	"github.com/adammck/stewart/platform"
	"github.com/adammck/stewart/servos"
)

var (
	configFile = flag.String("config", "", "rig config file (.json or .yaml)")
	layout     = flag.String("layout", "", "circular or hexagonal, overriding the config")
	program    = flag.String("program", "", "motion program to start with")
	pathText   = flag.String("path", "", "SVG path to draw, as a program named \"svg\"")
	boxSpec    = flag.String("box", "0,0,100,100", "viewbox of -path, as x,y,width,height")
	fps        = flag.Int("fps", 0, "ticks per second")
	duration   = flag.Duration("duration", 0, "stop after this long (zero runs forever)")
	portName   = flag.String("port", "", "serial port to send servo angles to")
	baud       = flag.Int("baud", servos.DefaultBaud, "baud rate of -port")
	jsDevice   = flag.String("js", "", "joystick device, e.g. /dev/input/js0")
	jsMapping  = flag.String("js-map", "", "button layout of -js: xpad, ds4, or empty for the raw numbering")
	plotFile   = flag.String("plot", "", "draw the platform from above to this PNG, then exit")
	recordFile = flag.String("record", "", "chart servo angles over the run to this PNG")
	strict     = flag.Bool("strict", false, "hold the last valid pose instead of unreachable ones")
	debug      = flag.Bool("debug", false, "verbose logging")
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

func parseBox(s string) (animation.Box, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return animation.Box{}, fmt.Errorf("want x,y,width,height; got %q", s)
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return animation.Box{}, fmt.Errorf("%w (while parsing box)", err)
		}
		v[i] = f
	}

	return animation.Box{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

func loadConfig() (*config.Config, error) {
	if *configFile == "" {
		return &config.Config{}, nil
	}

	return config.Load(*configFile)
}

func main() {
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := run(); err != nil {
		log.WithError(err).Error("exiting")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("%w (while loading config)", err)
	}

	if *layout != "" {
		cfg.Layout = layout
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	pc, err := cfg.Platform()
	if err != nil {
		return err
	}

	g, err := platform.Build(pc)
	if err != nil {
		return fmt.Errorf("%w (while building geometry)", err)
	}

	st := stewart.New(g)

	if *plotFile != "" {
		return chart.TopView(st.Frame(), *plotFile)
	}

	// Devices are merged, so the sticks work whichever is plugged in.
	src := input.Multi{}
	if *jsDevice != "" {
		f, err := os.Open(*jsDevice)
		if err != nil {
			return fmt.Errorf("%w (while opening joystick)", err)
		}
		defer f.Close()

		js := input.NewJoystick(f)
		if *jsMapping != "" {
			m, ok := input.Mappings[*jsMapping]
			if !ok {
				return fmt.Errorf("unknown joystick mapping: %q", *jsMapping)
			}
			js.Mapping = m
		}

		go func() {
			if err := js.Run(); err != nil {
				log.WithError(err).Warn("reading joystick")
			}
		}()
		src = append(src, js)
	}

	ctrl := animation.NewController(clock.Real{}, src)

	if *pathText != "" {
		box, err := parseBox(*boxSpec)
		if err != nil {
			return err
		}

		p, err := animation.SVG("svg", *pathText, box)
		if err != nil {
			return err
		}
		ctrl.Register(p)
		ctrl.Start("svg")
	} else {
		name := cfg.GetProgram()
		if *program != "" {
			name = *program
		}
		ctrl.Start(name)
	}

	m := motion.New(st, ctrl)
	m.Strict = *strict || cfg.GetStrict()
	st.Add(m)
	st.Add(controller.New(st, ctrl, src))

	if *portName != "" {
		port, err := servos.Open(*portName, *baud)
		if err != nil {
			return err
		}
		defer port.Close()

		s := servos.New(st, port)
		s.SkipInvalid = m.Strict
		st.Add(s)
	}

	var renderers []stewart.Renderer
	var rec *chart.Recorder
	if *recordFile != "" {
		rec = chart.NewRecorder(time.Now)
		renderers = append(renderers, rec)
	}

	log.Info("booting components")
	if err := st.Boot(); err != nil {
		return err
	}

	rate := cfg.GetFPS()
	if *fps > 0 {
		rate = *fps
	}
	t := time.NewTicker(time.Second / time.Duration(rate))
	defer t.Stop()

	// Catch both SIGINT (ctrl+c) and SIGTERM (kill/systemd), to allow the
	// servos to be released before exiting.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	var deadline <-chan time.Time
	if *duration > 0 {
		deadline = time.After(*duration)
	}

	// Commands are handled between ticks, since the controller isn't safe for
	// concurrent use.
	cmds := input.Commands(os.Stdin)

	log.WithField("fps", rate).Info("starting loop")
	for !st.Shutdown {
		select {
		case now := <-t.C:
			if err := st.Tick(now); err != nil {
				log.WithError(err).Warn("tick failed")
			}

			f := st.Frame()
			for _, r := range renderers {
				if err := r.Render(f); err != nil {
					log.WithError(err).Warn("render failed")
				}
			}

		case cmd, ok := <-cmds:
			if !ok {
				cmds = nil
				continue
			}
			command(st, ctrl, cmd)

		case s := <-sig:
			log.WithField("signal", s).Info("caught signal, shutting down")
			st.Shutdown = true

		case <-deadline:
			st.Shutdown = true
		}
	}

	servos.Shutdown()

	if rec != nil {
		if err := rec.Save(*recordFile); err != nil {
			return err
		}
		log.WithField("frames", rec.Frames()).Infof("wrote %s", *recordFile)
	}

	return nil
}

// command handles one line typed on stdin: a program name or its shortcut,
// "v" to toggle the path, or "x" to quit.
func command(st *stewart.Stewart, ctrl *animation.Controller, cmd string) {
	switch cmd {
	case "v":
		ctrl.TogglePathVisible()
		log.WithField("visible", ctrl.PathVisible()).Info("toggled path")

	case "x":
		st.Shutdown = true

	default:
		ctrl.Start(cmd)
	}
}
