package io

import (
	"fmt"
	"math"
	"sort"

	"github.com/phil-mansfield/table"
)

// Injector receives scheduled sources and forces. *fluid.State satisfies it.
type Injector interface {
	InjectSource(i, j int, amount float32) error
	InjectForce(i, j int, fx, fy float32) error
}

// Event is one row of an injection schedule.
type Event struct {
	Frame, I, J    int
	Source, FX, FY float32
}

// Apply performs the event on inj.
func (e *Event) Apply(inj Injector) error {
	if e.Source != 0 {
		if err := inj.InjectSource(e.I, e.J, e.Source); err != nil {
			return err
		}
	}
	if e.FX != 0 || e.FY != 0 {
		if err := inj.InjectForce(e.I, e.J, e.FX, e.FY); err != nil {
			return err
		}
	}
	return nil
}

// Schedule is a list of Events ordered by frame. Events within a frame keep
// their file order.
type Schedule struct {
	events []Event
}

const (
	frameCol, iCol, jCol, sourceCol, fxCol, fyCol = 0, 1, 2, 3, 4, 5
)

// ReadSchedule reads a schedule from a text table with the columns
// frame i j source fx fy.
func ReadSchedule(fname string) (*Schedule, error) {
	colIdxs := []int{frameCol, iCol, jCol, sourceCol, fxCol, fyCol}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	frames, is, js := cols[0], cols[1], cols[2]
	sources, fxs, fys := cols[3], cols[4], cols[5]

	events := make([]Event, len(frames))
	for row := range events {
		frame, ok1 := integral(frames[row])
		i, ok2 := integral(is[row])
		j, ok3 := integral(js[row])
		if !ok1 || !ok2 || !ok3 {
			return nil, fmt.Errorf(
				"%s: row %d has non-integral frame/i/j (%g, %g, %g)",
				fname, row, frames[row], is[row], js[row],
			)
		} else if frame < 0 {
			return nil, fmt.Errorf(
				"%s: row %d has negative frame %d", fname, row, frame,
			)
		}

		events[row] = Event{
			frame, i, j,
			float32(sources[row]), float32(fxs[row]), float32(fys[row]),
		}
	}

	return NewSchedule(events), nil
}

// NewSchedule creates a Schedule from events in any order.
func NewSchedule(events []Event) *Schedule {
	sorted := append([]Event(nil), events...)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Frame < sorted[b].Frame
	})
	return &Schedule{sorted}
}

func integral(x float64) (int, bool) {
	if x != math.Trunc(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return int(x), true
}

// Len returns the number of events in the schedule.
func (s *Schedule) Len() int { return len(s.events) }

// LastFrame returns the last frame with an event, or -1 for an empty
// schedule.
func (s *Schedule) LastFrame() int {
	if len(s.events) == 0 {
		return -1
	}
	return s.events[len(s.events)-1].Frame
}

// At returns the events of the given frame. The returned slice must not be
// modified.
func (s *Schedule) At(frame int) []Event {
	lo := sort.Search(len(s.events), func(n int) bool {
		return s.events[n].Frame >= frame
	})
	hi := lo
	for hi < len(s.events) && s.events[hi].Frame == frame {
		hi++
	}
	return s.events[lo:hi]
}

// Apply performs every event of the given frame on inj, stopping at the
// first error.
func (s *Schedule) Apply(frame int, inj Injector) error {
	events := s.At(frame)
	for n := range events {
		if err := events[n].Apply(inj); err != nil {
			return fmt.Errorf("frame %d, event %d: %w", frame, n, err)
		}
	}
	return nil
}
