package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/konstantinos193/gosnes/snes"
	"github.com/konstantinos193/gosnes/speakers"
	"github.com/konstantinos193/gosnes/ui"
)

func validCartPath(romPath string) error {
	stat, err := os.Stat(romPath)
	if err != nil {
		return fmt.Errorf("cartridge file path (%q) does not exist or is not valid", romPath)
	} else if stat.IsDir() {
		return fmt.Errorf("cartridge file path (%q) points to a directory", romPath)
	}
	return nil
}

func main() {
	romPath := flag.String("rom", "", "path to the cartridge image to run")
	verbose := flag.Bool("verbose", false, "log instruction execution")
	freeRun := flag.Bool("freerun", false, "run as fast as possible, no frame pacing")
	audioLib := flag.String("audio", speakers.Beep, "audio backend: nil | beep | portaudio | oto")
	flag.Parse()

	if err := validCartPath(*romPath); err != nil {
		fmt.Printf("Failed to start GoSnes, err=%v\n", err)
		return
	}

	console, err := snes.NewSnes(
		snes.CartPath(*romPath),
		snes.Verbose(*verbose),
		snes.FreeRun(*freeRun),
		snes.AudioLibrary(*audioLib),
	)
	if err != nil {
		fmt.Printf("Failed to start GoSnes, err=%v\n", err)
		return
	}

	fmt.Printf("Starting GoSnes with cartridge %q (%s)\n",
		console.Cartridge().Title(), console.Cartridge().Mapping())

	screen := ui.Screen{}
	screen.Init(console)
	screen.Run()

	console.Run()
}
