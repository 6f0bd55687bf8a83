// Command watch prints the servo angles which a motion program asks for, or
// which a single pose needs, without any hardware attached.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adammck/stewart/animation"
	"github.com/adammck/stewart/clock"
	"github.com/adammck/stewart/config"
	"github.com/adammck/stewart/math3d"
	"github.com/adammck/stewart/platform"
	"github.com/adammck/stewart/utils"
)

var (
	configFile = flag.String("config", "", "rig config file")
	program    = flag.String("program", animation.DefaultProgram, "the program to watch")
	pose       = flag.String("pose", "", "solve one pose instead, as x,y,z,heading,pitch,bank (degrees)")
	leg        = flag.Int("leg", -1, "the leg index to watch, or -1 for all")
	interval   = flag.Int("interval", 250, "the time between samples (ms)")
)

func parsePose(s string) (math3d.Pose, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return math3d.Pose{}, fmt.Errorf("want x,y,z,heading,pitch,bank; got %q", s)
	}

	var v [6]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return math3d.Pose{}, err
		}
		v[i] = f
	}

	return math3d.Pose{
		Translation: math3d.Vector3{X: v[0], Y: v[1], Z: v[2]},
		Orientation: math3d.MakeEulerAnglesDeg(v[3], v[4], v[5]).Quaternion(),
	}, nil
}

func show(g *platform.Geometry, p math3d.Pose) {
	legs := platform.Solve(g, p)
	fmt.Printf("Pose=%s\n", p)

	for i := range legs {
		if *leg >= 0 && i != *leg {
			continue
		}

		l := legs[i]
		switch l.Status {
		case platform.OK:
			fmt.Printf("Leg%d=%.2f°\n", i, utils.Deg(l.Angle))
		case platform.OutOfRange:
			fmt.Printf("Leg%d=%.2f° (%s)\n", i, utils.Deg(l.Angle), l.Status)
		default:
			fmt.Printf("Leg%d=%s\n", i, l.Status)
		}
	}

	fmt.Println()
}

func main() {
	flag.Parse()

	cfg := &config.Config{}
	if *configFile != "" {
		c, err := config.Load(*configFile)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		cfg = c
	}

	pc, err := cfg.Platform()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	g, err := platform.Build(pc)
	if err != nil {
		fmt.Printf("Error building geometry: %s\n", err)
		os.Exit(1)
	}

	if *pose != "" {
		p, err := parsePose(*pose)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		show(g, p)
		return
	}

	ctrl := animation.NewController(clock.Real{}, nil)
	if !ctrl.Start(*program) {
		os.Exit(1)
	}

	for {
		show(g, ctrl.Tick(time.Now()))
		time.Sleep(time.Duration(*interval) * time.Millisecond)
	}
}
