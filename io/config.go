package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gosmoke/fluid"
)

const (
	ExampleRunFile = `[Solver]

#######################
# Required Parameters #
#######################

# Number of interior cells along each side of the (square) grid.
Cells = 150

#######################
# Optional Parameters #
#######################

# Number of Gauss-Seidel sweeps used by the diffusion and pressure solves.
# Iterations = 20

# Viscosity of the fluid and diffusion rate of the smoke.
# Viscosity = 0
# Diffusion = 0.00001

# Timestep used by headless runs, and the largest timestep any frame is
# allowed to take. Longer frames are clamped.
# Timestep = 0.016
# MaxTimestep = 0.03

# Multiplicative decay applied to each field every frame.
# DensityDissipation = 0.982
# VelocityDissipation = 0.999

# Goroutines used for the stages which do not depend on evaluation order.
# Workers = 1

[Input]

# Size of the window (or of the coordinate space used by remote clients) that
# cursor positions are measured in.
# Width = 1280
# Height = 720

# Density injected per frame while the button is held, the upward velocity
# given to the injected smoke, and the factor converting cursor motion in
# pixels into force.
# SourceStrength = 9000
# LiftVelocity = 60
# ForceScale = 10

[Run]

# Number of frames a headless run will simulate. 0 means forever, which is
# only allowed together with Serve.
Frames = 300

# Text table with the columns: frame i j source fx fy. Each row is applied
# right before the given frame is simulated.
# Schedule = path/to/schedule.txt

# Animated GIF of the density field.
# Output = smoke.gif
# Density mapped to the top of the colour palette and the palette name. One
# of viridis, inferno, magma, plasma, turbo or greys.
# Scale = 1
# Palette = inferno
# Delay between GIF frames in hundredths of a second.
# GIFDelay = 2

# Binary dump of every density frame.
# FrameFile = frames.dat

# Python script (via matplotlib) plotting the diagnostics of the run.
# PlotFile = diagnostics.png

# Address to serve a websocket frame stream on, e.g. :8080. The stream is at
# /ws.
# Serve = :8080

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`
)

type SharedConfig struct {
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type SolverConfig struct {
	// Required
	Cells int

	// Optional
	Iterations, Workers   int
	Viscosity, Diffusion  float64
	Timestep, MaxTimestep float64
	DensityDissipation    float64
	VelocityDissipation   float64
}

func (con *SolverConfig) ValidCells() bool {
	return con.Cells > 0 && con.Cells <= fluid.MaxCells
}
func (con *SolverConfig) ValidTimestep() bool {
	return con.Timestep > 0 && con.Timestep <= con.MaxTimestep
}
func (con *SolverConfig) ValidCoefficients() bool {
	return con.Viscosity >= 0 && con.Diffusion >= 0
}

// Params converts the configuration into solver parameters.
func (con *SolverConfig) Params() fluid.Params {
	return fluid.Params{
		Iterations:          con.Iterations,
		DensityDissipation:  float32(con.DensityDissipation),
		VelocityDissipation: float32(con.VelocityDissipation),
		MaxTimestep:         float32(con.MaxTimestep),
		Workers:             con.Workers,
	}
}

type InputConfig struct {
	Width, Height                            int
	SourceStrength, LiftVelocity, ForceScale float64
}

func (con *InputConfig) ValidWindow() bool {
	return con.Width > 0 && con.Height > 0
}

type RunConfig struct {
	SharedConfig

	// Required
	Frames int

	// Optional
	Schedule, Output, FrameFile, PlotFile, Serve string
	Scale                                        float64
	Palette                                      string
	GIFDelay                                     int
}

func (con *RunConfig) ValidFrames() bool {
	return con.Frames > 0 || (con.Frames == 0 && con.ValidServe())
}
func (con *RunConfig) ValidSchedule() bool {
	return con.Schedule != ""
}
func (con *RunConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *RunConfig) ValidFrameFile() bool {
	return con.FrameFile != ""
}
func (con *RunConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *RunConfig) ValidServe() bool {
	return con.Serve != ""
}
func (con *RunConfig) ValidScale() bool {
	return con.Scale > 0
}

type RunWrapper struct {
	Solver SolverConfig
	Input  InputConfig
	Run    RunConfig
}

func DefaultRunWrapper() *RunWrapper {
	p := fluid.DefaultParams()
	wrap := &RunWrapper{}

	wrap.Solver.Iterations = p.Iterations
	wrap.Solver.Workers = p.Workers
	wrap.Solver.Diffusion = 0.00001
	wrap.Solver.Timestep = 0.016
	wrap.Solver.MaxTimestep = float64(p.MaxTimestep)
	wrap.Solver.DensityDissipation = fluid.DefaultDensityDissipation
	wrap.Solver.VelocityDissipation = fluid.DefaultVelocityDissipation

	wrap.Input.Width = 1280
	wrap.Input.Height = 720
	wrap.Input.SourceStrength = 9000
	wrap.Input.LiftVelocity = 60
	wrap.Input.ForceScale = 10

	wrap.Run.Scale = 1
	wrap.Run.Palette = "inferno"
	wrap.Run.GIFDelay = 2

	return wrap
}

// CheckInit returns an error describing the first invalid value, if any.
func (wrap *RunWrapper) CheckInit() error {
	sol, in, run := &wrap.Solver, &wrap.Input, &wrap.Run

	if !sol.ValidCells() {
		return fmt.Errorf(
			"Cells must be in range [1, %d], but is %d.",
			fluid.MaxCells, sol.Cells,
		)
	} else if !sol.ValidCoefficients() {
		return fmt.Errorf(
			"Viscosity and Diffusion must be non-negative, but are %g and %g.",
			sol.Viscosity, sol.Diffusion,
		)
	} else if !sol.ValidTimestep() {
		return fmt.Errorf(
			"Timestep must be in range (0, MaxTimestep = %g], but is %g.",
			sol.MaxTimestep, sol.Timestep,
		)
	} else if err := sol.Params().Validate(); err != nil {
		return err
	}

	if !in.ValidWindow() {
		return fmt.Errorf(
			"Width and Height must be positive, but are %d and %d.",
			in.Width, in.Height,
		)
	}

	if !run.ValidFrames() {
		return fmt.Errorf(
			"Frames must be positive (or 0 with Serve set), but is %d.",
			run.Frames,
		)
	} else if !run.ValidScale() {
		return fmt.Errorf("Scale must be positive, but is %g.", run.Scale)
	} else if run.GIFDelay < 0 {
		return fmt.Errorf("GIFDelay must be non-negative, but is %d.", run.GIFDelay)
	}
	run.Palette = strings.ToLower(run.Palette)

	return nil
}

// ReadRunConfig reads and checks a [Run] configuration file.
func ReadRunConfig(fname string) (*RunWrapper, error) {
	wrap := DefaultRunWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return wrap, nil
}

// ParseRunConfig is ReadRunConfig for configuration text held in memory.
func ParseRunConfig(text string) (*RunWrapper, error) {
	wrap := DefaultRunWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := wrap.CheckInit(); err != nil {
		return nil, err
	}
	return wrap, nil
}
