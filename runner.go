/*package gosmoke drives a smoke simulation frame by frame, merging scripted
and interactive injections into the solver.*/
package gosmoke

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/phil-mansfield/gosmoke/fluid"
	"github.com/phil-mansfield/gosmoke/input"
	"github.com/phil-mansfield/gosmoke/io"
)

// Runner owns a fluid.State and advances it one frame at a time. Advance
// and the accessors must be called from a single goroutine, but Enqueue
// and EnqueueCursor may be called from any goroutine.
type Runner struct {
	state  *fluid.State
	sched  *io.Schedule
	mapper *input.Mapper

	visc, diff float32
	timestep   float32
	frames     int

	frame int
	hist  []fluid.Diagnostics

	mtx     sync.Mutex
	queue   []func(io.Injector) error
	dropped int
}

// NewRunner creates a Runner from a checked configuration, reading the
// injection schedule if one is given.
func NewRunner(wrap *io.RunWrapper) (*Runner, error) {
	sol := &wrap.Solver
	state, err := fluid.New(sol.Cells, sol.Params())
	if err != nil {
		return nil, err
	}

	r := &Runner{
		state:    state,
		mapper:   input.NewMapper(sol.Cells, &wrap.Input),
		visc:     float32(sol.Viscosity),
		diff:     float32(sol.Diffusion),
		timestep: float32(sol.Timestep),
		frames:   wrap.Run.Frames,
	}

	if wrap.Run.ValidSchedule() {
		r.sched, err = io.ReadSchedule(wrap.Run.Schedule)
		if err != nil {
			return nil, err
		}
		log.Printf(
			"Read %d scheduled events up to frame %d from %s.",
			r.sched.Len(), r.sched.LastFrame(), wrap.Run.Schedule,
		)
	} else {
		r.sched = io.NewSchedule(nil)
	}

	return r, nil
}

// State returns the simulation state.
func (r *Runner) State() *fluid.State { return r.state }

// Mapper returns the Mapper used by EnqueueCursor.
func (r *Runner) Mapper() *input.Mapper { return r.mapper }

// Frame returns the index of the next frame to be simulated.
func (r *Runner) Frame() int { return r.frame }

// Timestep returns the configured fixed timestep.
func (r *Runner) Timestep() float32 { return r.timestep }

// Done returns true once the configured number of frames has been run. A
// Runner configured with zero frames is never done.
func (r *Runner) Done() bool {
	return r.frames > 0 && r.frame >= r.frames
}

// History returns the diagnostics of every frame run so far.
func (r *Runner) History() []fluid.Diagnostics {
	return append([]fluid.Diagnostics(nil), r.hist...)
}

// Enqueue defers an injection until the start of the next frame.
func (r *Runner) Enqueue(f func(inj io.Injector) error) {
	r.mtx.Lock()
	r.queue = append(r.queue, f)
	r.mtx.Unlock()
}

// EnqueueCursor defers the injections of a cursor sample until the start of
// the next frame.
func (r *Runner) EnqueueCursor(c input.Cursor) {
	r.Enqueue(func(inj io.Injector) error {
		_, err := r.mapper.Apply(inj, c)
		return err
	})
}

// Dropped returns the number of queued injections which were rejected.
func (r *Runner) Dropped() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.dropped
}

// Advance runs a single frame with the given timestep. Queued injections
// are applied first, then the scheduled events of the frame. Queued
// injections which fail are logged and dropped, but scheduled events which
// fail stop the run.
func (r *Runner) Advance(dt float32) error {
	r.mtx.Lock()
	queue := r.queue
	r.queue = nil
	r.mtx.Unlock()

	dropped := 0
	for _, f := range queue {
		if err := f(r.state); err != nil {
			if !errors.Is(err, fluid.ErrOutOfRange) {
				return err
			}
			log.Printf("Dropped injection at frame %d: %s", r.frame, err)
			dropped++
		}
	}
	if dropped > 0 {
		r.mtx.Lock()
		r.dropped += dropped
		r.mtx.Unlock()
	}

	if err := r.sched.Apply(r.frame, r.state); err != nil {
		return err
	}

	if dt > r.state.Params().MaxTimestep {
		dt = r.state.Params().MaxTimestep
	}
	if err := r.state.Step(r.visc, r.diff, dt); err != nil {
		return fmt.Errorf("frame %d: %w", r.frame, err)
	}
	if err := r.state.CheckFinite(); err != nil {
		return fmt.Errorf("frame %d: %w", r.frame, err)
	}

	diag := r.state.Diagnostics()
	diag.Frame, diag.Dt = r.frame, float64(dt)
	r.hist = append(r.hist, diag)
	r.frame++

	return nil
}

// Run advances the configured number of frames at the fixed timestep,
// calling onFrame after each one. onFrame may be nil.
func (r *Runner) Run(onFrame func(r *Runner) error) error {
	if r.frames <= 0 {
		return fmt.Errorf("Run needs a positive frame count, but has %d.", r.frames)
	}
	for !r.Done() {
		if err := r.Advance(r.timestep); err != nil {
			return err
		}
		if onFrame != nil {
			if err := onFrame(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// EncodeDensity returns the current density field as a binary frame.
func (r *Runner) EncodeDensity() ([]byte, error) {
	buf := &bytes.Buffer{}
	dt := float32(0)
	if len(r.hist) > 0 {
		dt = float32(r.hist[len(r.hist)-1].Dt)
	}
	err := io.WriteDensity(
		buf, r.state.N(), r.frame, dt, r.state.DensityField(),
	)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
