package snes

import (
	"fmt"

	"github.com/konstantinos193/gosnes/speakers"
)

func (n *Snes) setOptions(options ...func(*Snes) error) error {
	for i, option := range options {
		if err := option(n); err != nil {
			return fmt.Errorf("failed to set option index %d, err=%v", i, err)
		}
	}
	return nil
}

func (n *Snes) setCart(path string) error {
	n.cartPath = path
	return nil
}
func (n *Snes) setVerbose(verbose bool) error {
	n.verbose = verbose
	return nil
}
func (n *Snes) setFreeRun(freeRun bool) error {
	n.freeRun = freeRun
	return nil
}
func (n *Snes) setAudioLibrary(name speakers.AudioLib) error {
	n.audioLib = name
	return nil
}

func CartPath(path string) func(n *Snes) error {
	return func(n *Snes) error {
		return n.setCart(path)
	}
}

func Verbose(verbose bool) func(n *Snes) error {
	return func(n *Snes) error {
		return n.setVerbose(verbose)
	}
}

func FreeRun(freeRun bool) func(n *Snes) error {
	return func(n *Snes) error {
		return n.setFreeRun(freeRun)
	}
}

func AudioLibrary(name string) func(n *Snes) error {
	return func(n *Snes) error {
		return n.setAudioLibrary(speakers.AudioLib(name))
	}
}

func FrameSink(sink func(frame []uint8)) func(n *Snes) error {
	return func(n *Snes) error {
		n.frameSink = sink
		return nil
	}
}
