package io

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type injection struct {
	i, j           int
	source, fx, fy float32
}

type recorder struct {
	n    int
	seen []injection
}

var errOutside = errors.New("outside")

func (r *recorder) InjectSource(i, j int, amount float32) error {
	if i < 1 || j < 1 || i > r.n || j > r.n {
		return errOutside
	}
	r.seen = append(r.seen, injection{i, j, amount, 0, 0})
	return nil
}

func (r *recorder) InjectForce(i, j int, fx, fy float32) error {
	if i < 1 || j < 1 || i > r.n || j > r.n {
		return errOutside
	}
	r.seen = append(r.seen, injection{i, j, 0, fx, fy})
	return nil
}

func writeSchedule(t *testing.T, text string) string {
	fname := filepath.Join(t.TempDir(), "schedule.txt")
	require.NoError(t, os.WriteFile(fname, []byte(text), 0644))
	return fname
}

func TestReadSchedule(t *testing.T) {
	fname := writeSchedule(t, `# frame i j source fx fy
3 4 4 0 2 -1
0 8 8 100 0 0
3 5 6 50 0 0
0 8 8 0 0 10
`)

	s, err := ReadSchedule(fname)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 3, s.LastFrame())

	table := []struct {
		frame int
		n     int
	}{
		{0, 2}, {1, 0}, {2, 0}, {3, 2}, {4, 0}, {-1, 0},
	}
	for i, test := range table {
		if n := len(s.At(test.frame)); n != test.n {
			t.Errorf("%d) Expected %d events at frame %d, got %d",
				i, test.n, test.frame, n)
		}
	}

	// File order is kept within a frame.
	events := s.At(3)
	assert.Equal(t, Event{3, 4, 4, 0, 2, -1}, events[0])
	assert.Equal(t, Event{3, 5, 6, 50, 0, 0}, events[1])
}

func TestReadScheduleErrors(t *testing.T) {
	_, err := ReadSchedule(writeSchedule(t, "0 1.5 2 1 0 0\n"))
	assert.Error(t, err)

	_, err = ReadSchedule(writeSchedule(t, "-1 1 2 1 0 0\n"))
	assert.Error(t, err)

	_, err = ReadSchedule(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestScheduleApply(t *testing.T) {
	s := NewSchedule([]Event{
		{Frame: 2, I: 1, J: 1, Source: 1, FX: 3, FY: 4},
		{Frame: 1, I: 2, J: 2, FY: -1},
		{Frame: 2, I: 9, J: 9, Source: 1},
	})
	r := &recorder{n: 4}

	require.NoError(t, s.Apply(0, r))
	assert.Empty(t, r.seen)

	require.NoError(t, s.Apply(1, r))
	assert.Equal(t, []injection{{2, 2, 0, 0, -1}}, r.seen)

	r.seen = nil
	err := s.Apply(2, r)
	assert.ErrorIs(t, err, errOutside)
	assert.Equal(t, []injection{{1, 1, 1, 0, 0}, {1, 1, 0, 3, 4}}, r.seen)
}

func TestEmptySchedule(t *testing.T) {
	s := NewSchedule(nil)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.LastFrame())
	assert.Empty(t, s.At(0))
}
