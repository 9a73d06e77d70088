package snes

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/konstantinos193/gosnes/snes/common"
)

// bump when the serialised layout changes
const stateVersion = uint32(1)

func (n *Snes) Serialise(s common.Serialiser) error {
	return s.Serialise(stateVersion,
		&n.cpu, &n.mmu, &n.ppu, &n.apu, &n.dma, &n.cart, &n.ctrl,
		n.clkBudget, n.frames)
}

func (n *Snes) DeSerialise(s common.Serialiser) error {
	var version uint32
	if err := s.DeSerialise(&version); err != nil {
		return err
	}
	if version != stateVersion {
		return fmt.Errorf("unsupported save state version %d", version)
	}
	var clkBudget int
	var frames uint64
	if err := s.DeSerialise(
		&n.cpu, &n.mmu, &n.ppu, &n.apu, &n.dma, &n.cart, &n.ctrl,
		&clkBudget, &frames); err != nil {
		return err
	}
	n.clkBudget = clkBudget
	n.frames = frames
	return nil
}

// Snapshot serialises the full mutable state into a byte blob.
func (n *Snes) Snapshot() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.Serialise(common.NewSerialiserBuf(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Restore rebuilds the machine state from a Snapshot blob. The same
// cartridge must be loaded; the blob carries its fingerprint.
func (n *Snes) Restore(blob []byte) error {
	// start from a known state, the gob decoder skips zero values:
	// https://github.com/golang/go/issues/21929
	n.Reset()
	return n.DeSerialise(common.NewSerialiserBuf(bytes.NewBuffer(blob)))
}

// save/load states to a file next to the cartridge; backs the ui's
// ctrl-F5/ctrl-F9 bindings
func (n *Snes) saveState() {
	if n.cart.cartPath == "" {
		return
	}
	file, err := os.Create(n.cart.stateFile())
	if err != nil {
		log.Printf("Failed to create the save state file: %v", err)
		return
	}
	defer file.Close()
	if err := n.Serialise(common.NewSerialiser(file)); err != nil {
		log.Printf("Failed to save state: %v", err)
	}
}

func (n *Snes) loadState() {
	if n.cart.cartPath == "" {
		return
	}
	file, err := os.Open(n.cart.stateFile())
	if err != nil {
		log.Printf("Failed to open the save state file: %v", err)
		return
	}
	defer file.Close()

	n.Reset()
	if err := n.DeSerialise(common.NewSerialiser(file)); err != nil {
		log.Printf("Failed to load state: %v", err)
	}
}
