package main

import (
	"flag"
	"log"

	"github.com/phil-mansfield/gosmoke"
	"github.com/phil-mansfield/gosmoke/io"
	"github.com/phil-mansfield/gosmoke/view"
)

func main() {
	var config string
	flag.StringVar(
		&config, "Config", "",
		"Configuration file in the format of gosmoke -ExampleConfig Run. "+
			"If not set, the example configuration is run until the window "+
			"is closed.",
	)
	flag.Parse()

	var (
		wrap *io.RunWrapper
		err  error
	)
	if config == "" {
		wrap, err = io.ParseRunConfig(io.ExampleRunFile)
	} else {
		wrap, err = io.ReadRunConfig(config)
	}
	if err != nil {
		log.Fatal(err.Error())
	}
	if config == "" {
		wrap.Run.Frames = 0
	}

	r, err := gosmoke.NewRunner(wrap)
	if err != nil {
		log.Fatal(err.Error())
	}
	v, err := view.New(r, wrap)
	if err != nil {
		log.Fatal(err.Error())
	}
	if err = v.Run(); err != nil {
		log.Fatal(err.Error())
	}
}
