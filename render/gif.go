package render

import (
	"fmt"
	"image"
	"image/gif"
	"io"

	"github.com/phil-mansfield/gosmoke/geom"
)

// GIFWriter accumulates density frames into an animated GIF.
type GIFWriter struct {
	pal   *Palette
	scale float32
	delay int
	anim  gif.GIF
}

// NewGIFWriter creates a GIFWriter. Densities at or above scale take the
// brightest colour and delay is in hundredths of a second.
func NewGIFWriter(pal *Palette, scale float32, delay int) *GIFWriter {
	return &GIFWriter{pal: pal, scale: scale, delay: delay}
}

// AddFrame appends the density field d to the animation.
func (w *GIFWriter) AddFrame(g *geom.Grid, d []float32) {
	w.anim.Image = append(w.anim.Image, w.pal.Paletted(g, d, w.scale))
	w.anim.Delay = append(w.anim.Delay, w.delay)
}

// Frames returns the number of frames added so far.
func (w *GIFWriter) Frames() int { return len(w.anim.Image) }

// Encode writes the animation to wr.
func (w *GIFWriter) Encode(wr io.Writer) error {
	if len(w.anim.Image) == 0 {
		return fmt.Errorf("No frames were added to the GIF.")
	}
	return gif.EncodeAll(wr, &w.anim)
}

// Last returns the most recently added frame, or nil.
func (w *GIFWriter) Last() *image.Paletted {
	if len(w.anim.Image) == 0 {
		return nil
	}
	return w.anim.Image[len(w.anim.Image)-1]
}
