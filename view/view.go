/*package view runs a simulation interactively in a raylib window.*/
package view

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/phil-mansfield/gosmoke"
	"github.com/phil-mansfield/gosmoke/input"
	"github.com/phil-mansfield/gosmoke/io"
	"github.com/phil-mansfield/gosmoke/render"
)

const (
	targetFPS = 60
	title     = "Smoke"
)

// Viewer draws the density of a Runner every frame and feeds the mouse
// into it.
type Viewer struct {
	r     *gosmoke.Runner
	pal   *render.Palette
	scale float32

	width, height int32
	pixels        []color.RGBA
	tex           rl.Texture2D
}

// New creates a Viewer. The window is not opened until Run is called.
func New(r *gosmoke.Runner, wrap *io.RunWrapper) (*Viewer, error) {
	pal, err := render.NewPalette(wrap.Run.Palette, 256)
	if err != nil {
		return nil, err
	}
	n := r.State().N()
	return &Viewer{
		r:      r,
		pal:    pal,
		scale:  float32(wrap.Run.Scale),
		width:  int32(wrap.Input.Width),
		height: int32(wrap.Input.Height),
		pixels: make([]color.RGBA, n*n),
	}, nil
}

// Cursor samples the mouse.
func Cursor() input.Cursor {
	pos, delta := rl.GetMousePosition(), rl.GetMouseDelta()
	return input.Cursor{
		X:    float64(pos.X),
		Y:    float64(pos.Y),
		DX:   float64(delta.X),
		DY:   float64(delta.Y),
		Down: rl.IsMouseButtonDown(rl.MouseLeftButton),
	}
}

// Run opens the window and simulates one frame per drawn frame until the
// window is closed or the Runner is done.
func (v *Viewer) Run() error {
	rl.InitWindow(v.width, v.height, title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	n := v.r.State().N()
	img := rl.GenImageColor(n, n, rl.Black)
	v.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(v.tex)
	rl.SetTextureFilter(v.tex, rl.FilterBilinear)

	src := rl.NewRectangle(0, 0, float32(n), float32(n))
	dst := rl.NewRectangle(0, 0, float32(v.width), float32(v.height))

	for !rl.WindowShouldClose() && !v.r.Done() {
		if _, err := v.r.Mapper().Apply(v.r.State(), Cursor()); err != nil {
			return err
		}
		dt := rl.GetFrameTime()
		if dt <= 0 {
			dt = v.r.Timestep()
		}
		if err := v.r.Advance(dt); err != nil {
			return err
		}

		state := v.r.State()
		v.pal.FillRGBA(v.pixels, state.Grid(), state.DensityField(), v.scale)
		rl.UpdateTexture(v.tex, v.pixels)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTexturePro(v.tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
		rl.DrawFPS(10, 10)
		rl.EndDrawing()
	}
	return nil
}
