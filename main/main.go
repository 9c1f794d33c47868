package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gosmoke"
	"github.com/phil-mansfield/gosmoke/io"
	"github.com/phil-mansfield/gosmoke/render"
	"github.com/phil-mansfield/gosmoke/stream"
)

const (
	histBins = 32
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		if err := fg.log.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		if err := fg.prof.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var run, exampleConfig string
	vars := map[string]*string{
		"Run":           &run,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(&run, "Run", "", "Configuration file for [Run] mode.")
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is 'Run'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Run":
		wrap, err := io.ReadRunConfig(run)
		if err != nil {
			log.Fatal(err.Error())
		}
		runMain(wrap)
	case "ExampleConfig":
		switch exampleConfig {
		case "Run":
			fmt.Println(io.ExampleRunFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Run'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gosmoke "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func setupIO(con *io.SharedConfig) *FileGroup {
	var err error
	fg := new(FileGroup)

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err = pprof.StartCPUProfile(fg.prof); err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}

// outputs holds everything written after each frame.
type outputs struct {
	gif    *render.GIFWriter
	frames *os.File
	hub    *stream.Hub
}

func (out *outputs) frame(r *gosmoke.Runner) error {
	state := r.State()
	if out.gif != nil {
		out.gif.AddFrame(state.Grid(), state.DensityField())
	}

	if out.frames != nil {
		hist := r.History()
		diag := hist[len(hist)-1]
		err := io.WriteDensity(
			out.frames, state.N(), diag.Frame, float32(diag.Dt),
			state.DensityField(),
		)
		if err != nil {
			return err
		}
	}

	if out.hub != nil {
		msg, err := r.EncodeDensity()
		if err != nil {
			return err
		}
		out.hub.Broadcast(msg)
	}

	if frame := r.Frame(); frame&(frame-1) == 0 {
		log.Printf("Frame %d", frame)
	}
	return nil
}

func runMain(wrap *io.RunWrapper) {
	con := &wrap.Run
	fg := setupIO(&con.SharedConfig)
	defer fg.Close()

	r, err := gosmoke.NewRunner(wrap)
	if err != nil {
		log.Fatal(err.Error())
	}

	out := &outputs{}
	if con.ValidOutput() {
		pal, err := render.NewPalette(con.Palette, 256)
		if err != nil {
			log.Fatal(err.Error())
		}
		out.gif = render.NewGIFWriter(pal, float32(con.Scale), con.GIFDelay)
	}

	if con.ValidFrameFile() {
		out.frames, err = os.Create(con.FrameFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer out.frames.Close()
	}

	if con.ValidServe() {
		out.hub = stream.NewHub(r.EnqueueCursor)
		err = serveMain(r, con.Serve, out)
	} else {
		err = r.Run(out.frame)
	}
	if err != nil {
		log.Fatal(err.Error())
	}

	log.Printf("Completed %d frames.", r.Frame())
	if r.Dropped() > 0 {
		log.Printf("Dropped %d injections outside the grid.", r.Dropped())
	}

	if out.gif != nil {
		f, err := os.Create(con.Output)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err = out.gif.Encode(f); err != nil {
			log.Fatal(err.Error())
		}
		if err = f.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}

	if con.ValidPlotFile() {
		plotMain(r, con)
	}
}

// serveMain advances the runner in real time, broadcasting every frame,
// until the configured number of frames is reached or the process is
// interrupted.
func serveMain(r *gosmoke.Runner, addr string, out *outputs) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", out.hub)
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		log.Printf("Serving frames on %s/ws", addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal(err.Error())
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	period := time.Duration(float64(r.Timestep()) * float64(time.Second))
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	prev := time.Now()
	var err error
loop:
	for !r.Done() {
		select {
		case <-ctx.Done():
			break loop
		case now := <-ticker.C:
			dt := float32(now.Sub(prev).Seconds())
			prev = now
			if err = r.Advance(dt); err != nil {
				break loop
			}
			if err = out.frame(r); err != nil {
				break loop
			}
		}
	}

	shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if serr := server.Shutdown(shutdown); serr != nil && err == nil {
		err = serr
	}
	return err
}

func plotMain(r *gosmoke.Runner, con *io.RunConfig) {
	if err := render.PlotHistory(r.History(), con.PlotFile); err != nil {
		log.Fatal(err.Error())
	}

	info := &render.HistInfo{
		Min: con.Scale * 1e-3, Max: con.Scale, Bins: histBins, Scale: "log",
	}
	state := r.State()
	counts := render.Histogram(info, state.Grid(), state.DensityField())

	ext := filepath.Ext(con.PlotFile)
	histFile := strings.TrimSuffix(con.PlotFile, ext) + "_hist" + ext
	if err := render.PlotHistogram(info, counts, histFile); err != nil {
		log.Fatal(err.Error())
	}

	plt.Execute()
}
