package snes

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/konstantinos193/gosnes/snes/common"
)

type Mapping int

const (
	LowMapped Mapping = iota
	HighMapped
)

func (m Mapping) String() string {
	if m == HighMapped {
		return "HighMapped"
	}
	return "LowMapped"
}

var (
	ErrTooSmall         = errors.New("cartridge image is below the minimum plausible size")
	ErrUnreadableHeader = errors.New("no cartridge header candidate scored above zero")
)

// the smallest image that could hold a bank of code plus vectors
const minCartSize = 0x8000

// optional copier prefix glued on by old dumper hardware
const copierHeaderSize = 512

type Cartridge struct {
	rom  []byte
	sram common.Ram

	mapping    Mapping
	header     romHeader
	checksumOk bool
	hasSaveRam bool

	cartPath string
}

func (c *Cartridge) init(image []byte) error {
	image = stripCopierHeader(image)

	if len(image) < minCartSize {
		return fmt.Errorf("%w: %d bytes", ErrTooSmall, len(image))
	}

	lo, loOk := parseHeader(image, loHeaderBase)
	hi, hiOk := parseHeader(image, hiHeaderBase)

	loScore, hiScore := 0, 0
	if loOk {
		loScore = lo.score(image)
	}
	if hiOk {
		hiScore = hi.score(image)
	}

	if loScore == 0 && hiScore == 0 {
		return ErrUnreadableHeader
	}

	// ties favour the low mapping
	if hiScore > loScore {
		c.header = hi
		c.mapping = HighMapped
	} else {
		c.header = lo
		c.mapping = LowMapped
	}

	c.rom = make([]byte, len(image))
	copy(c.rom, image)

	c.checksumOk = c.header.checksumValid(image)
	if !c.checksumOk {
		log.Printf("cartridge %q: checksum mismatch (stored 0x%04x), continuing anyway",
			c.header.title, c.header.checksum)
	}

	sramSize := c.header.saveRamSizeBytes()
	c.hasSaveRam = sramSize > 0
	c.sram.Init(sramSize)

	return nil
}

func (c *Cartridge) initFile(path string) error {
	c.cartPath = path

	image, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := c.init(image); err != nil {
		return err
	}
	c.loadBattery()
	return nil
}

func stripCopierHeader(image []byte) []byte {
	if len(image)%1024 == copierHeaderSize {
		return image[copierHeaderSize:]
	}
	return image
}

// reset keeps rom and battery ram; only a fresh load clears them
func (c *Cartridge) reset() {}

func (c *Cartridge) loaded() bool {
	return len(c.rom) > 0
}

func (c *Cartridge) Title() string {
	return c.header.title
}

func (c *Cartridge) Mapping() Mapping {
	return c.mapping
}

func (c *Cartridge) romSize() uint32 {
	return uint32(len(c.rom))
}

// readMapped fetches a rom byte by mapped offset, wrapping to the
// image size
func (c *Cartridge) readMapped(offset uint32) uint8 {
	if len(c.rom) == 0 {
		return 0
	}
	return c.rom[offset%uint32(len(c.rom))]
}

func (c *Cartridge) readSram(offset uint32) (uint8, bool) {
	if offset >= c.sram.Size() {
		return 0, false
	}
	return c.sram.Read8(offset), true
}

func (c *Cartridge) writeSram(offset uint32, val uint8) bool {
	if offset >= c.sram.Size() {
		return false
	}
	c.sram.Write8(offset, val)
	return true
}

// fingerprint identifies the loaded image inside save states
func (c *Cartridge) fingerprint() (uint32, uint16) {
	return c.romSize(), c.header.checksum
}

func (c *Cartridge) batteryFile() string {
	return c.cartPath + ".srm"
}

func (c *Cartridge) stateFile() string {
	return c.cartPath + ".state"
}

func (c *Cartridge) loadBattery() {
	if !c.hasSaveRam || c.cartPath == "" {
		return
	}
	file, err := os.Open(c.batteryFile())
	if err != nil {
		return
	}
	defer file.Close()
	if _, err := c.sram.LoadFromFile(file); err != nil {
		log.Printf("failed to load battery ram: %v", err)
	}
}

func (c *Cartridge) saveBattery() {
	if !c.hasSaveRam || c.cartPath == "" {
		return
	}
	file, err := os.Create(c.batteryFile())
	if err != nil {
		log.Printf("failed to create battery ram file: %v", err)
		return
	}
	defer file.Close()
	if err := c.sram.SaveToFile(file); err != nil {
		log.Printf("failed to save battery ram: %v", err)
	}
}

func (c *Cartridge) Serialise(s common.Serialiser) error {
	size, sum := c.fingerprint()
	return s.Serialise(size, sum, &c.sram)
}
func (c *Cartridge) DeSerialise(s common.Serialiser) error {
	var size uint32
	var sum uint16
	if err := s.DeSerialise(&size, &sum); err != nil {
		return err
	}
	if mySize, mySum := c.fingerprint(); size != mySize || sum != mySum {
		return fmt.Errorf("save state belongs to a different cartridge (size %d sum 0x%04x)", size, sum)
	}
	return s.DeSerialise(&c.sram)
}
