package io

import (
	"encoding/binary"
	"fmt"
	"io"
)

var end binary.ByteOrder = binary.LittleEndian

type FieldFlag int64

const (
	Density FieldFlag = iota
	Velocity
	EndField
)

func (flag FieldFlag) String() string {
	switch flag {
	case Density:
		return "Density"
	case Velocity:
		return "Velocity"
	}
	return "Unknown"
}

// Components returns the number of float32 buffers stored in a frame.
func (flag FieldFlag) Components() int {
	if flag == Velocity {
		return 2
	}
	return 1
}

// FrameHeader precedes the (Cells + 2)^2 values of every buffer in a frame.
type FrameHeader struct {
	Endianness int64
	HeaderSize int64
	FieldType  int64
	Cells      int64
	Frame      int64
	Dt         float64
}

func newFrameHeader(flag FieldFlag, cells, frame int, dt float32) FrameHeader {
	var endFlag int64
	if end == binary.LittleEndian {
		endFlag = -1
	} else {
		endFlag = 0
	}

	hd := FrameHeader{}
	hd.Endianness = endFlag
	hd.HeaderSize = int64(binary.Size(hd))
	hd.FieldType = int64(flag)
	hd.Cells = int64(cells)
	hd.Frame = int64(frame)
	hd.Dt = float64(dt)
	return hd
}

// WriteDensity writes a single density frame to wr.
func WriteDensity(
	wr io.Writer, cells, frame int, dt float32, d []float32,
) error {
	return WriteFrame(wr, Density, cells, frame, dt, d)
}

// WriteVelocity writes a velocity frame, u followed by v, to wr.
func WriteVelocity(
	wr io.Writer, cells, frame int, dt float32, u, v []float32,
) error {
	return WriteFrame(wr, Velocity, cells, frame, dt, u, v)
}

// WriteFrame writes a frame header followed by xs to wr. Every buffer must
// have length (cells + 2)^2.
func WriteFrame(
	wr io.Writer, flag FieldFlag, cells, frame int, dt float32,
	xs ...[]float32,
) error {
	size := (cells + 2) * (cells + 2)
	if len(xs) != flag.Components() {
		return fmt.Errorf(
			"WriteFrame: %s frames have %d components, got %d",
			flag, flag.Components(), len(xs),
		)
	}
	for _, x := range xs {
		if len(x) != size {
			return fmt.Errorf(
				"WriteFrame: buffer has length %d, but %d cells need %d",
				len(x), cells, size,
			)
		}
	}

	hd := newFrameHeader(flag, cells, frame, dt)
	if err := binary.Write(wr, end, &hd); err != nil {
		return err
	}
	for _, x := range xs {
		if err := binary.Write(wr, end, x); err != nil {
			return err
		}
	}
	return nil
}

// ReadFrame reads a frame written by WriteFrame. The returned buffers are
// in the order they were written.
func ReadFrame(rd io.Reader) (*FrameHeader, [][]float32, error) {
	hd := &FrameHeader{}
	if err := binary.Read(rd, end, hd); err != nil {
		return nil, nil, err
	}
	if hd.Endianness != -1 {
		return nil, nil, fmt.Errorf(
			"ReadFrame: unsupported endianness flag %d", hd.Endianness,
		)
	} else if hd.FieldType < 0 || FieldFlag(hd.FieldType) >= EndField {
		return nil, nil, fmt.Errorf(
			"ReadFrame: unknown field type %d", hd.FieldType,
		)
	} else if hd.Cells < 1 {
		return nil, nil, fmt.Errorf("ReadFrame: invalid cell count %d", hd.Cells)
	}

	size := (hd.Cells + 2) * (hd.Cells + 2)
	xs := make([][]float32, FieldFlag(hd.FieldType).Components())
	for n := range xs {
		xs[n] = make([]float32, size)
		if err := binary.Read(rd, end, xs[n]); err != nil {
			return nil, nil, err
		}
	}
	return hd, xs, nil
}
