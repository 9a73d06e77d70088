package ui

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/konstantinos193/gosnes/snes"
	"github.com/konstantinos193/gosnes/snes/common"
)

const (
	screenFrameRatio = 3
	screenXWidth     = common.FrameXWidth * screenFrameRatio
	screenYHeight    = common.FrameYHeight * screenFrameRatio
)

// Console is the slice of the emulator the presenter needs.
type Console interface {
	Poke(padId uint8, id snes.Button, pressed bool)
	Request(request common.OpRequest)
	Framebuffer() *common.Framebuffer
}

type Screen struct {
	console Console

	// window where we draw the sprite
	window *pixelgl.Window

	// front and back buffers
	buffer0 *pixel.PictureData
	buffer1 *pixel.PictureData
	sprite  *pixel.Sprite

	framebuffer *common.Framebuffer

	// FPS stats
	fpsChannel   <-chan time.Time
	fpsLastFrame int
}

func (s *Screen) Init(console Console) {
	s.console = console
	s.framebuffer = console.Framebuffer()

	s.setSprite()
}

func (s *Screen) Run() {
	go func() {
		runtime.LockOSThread()
		pixelgl.Run(s.runThread)
		os.Exit(0)
	}()
}

func (s *Screen) runThread() {
	cfg := pixelgl.WindowConfig{
		Title:  "GoSnes",
		Bounds: pixel.R(0, 0, screenXWidth, screenYHeight),
		VSync:  true,
	}
	window, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	s.window = window
	s.fpsChannel = time.Tick(time.Second)
	s.fpsLastFrame = 0

	s.runner()
}

func (s *Screen) runner() {
	lastLoopFrames := 0
	s.window.Clear(colornames.Black)

	for !s.window.Closed() {

		<-s.framebuffer.FrameUpdated

		frameDiff := s.framebuffer.Frames - lastLoopFrames
		if frameDiff > 0 {
			if frameDiff > 1 {
				fmt.Printf("Oops, skipped %v frames!\n", frameDiff)
			}

			s.draw()
			s.window.Update()
			lastLoopFrames = s.framebuffer.Frames
		}

		s.updateFpsTitle()
		s.updateControllers()
	}
	s.console.Request(common.StopRequest)
}

var buttons = [12]struct {
	id  snes.Button
	key pixelgl.Button
}{
	{snes.ButtonA, pixelgl.KeyS},
	{snes.ButtonB, pixelgl.KeyA},
	{snes.ButtonX, pixelgl.KeyW},
	{snes.ButtonY, pixelgl.KeyQ},
	{snes.ButtonL, pixelgl.KeyE},
	{snes.ButtonR, pixelgl.KeyR},
	{snes.ButtonSelect, pixelgl.KeyLeftShift},
	{snes.ButtonStart, pixelgl.KeyEnter},
	{snes.ButtonUp, pixelgl.KeyUp},
	{snes.ButtonDown, pixelgl.KeyDown},
	{snes.ButtonLeft, pixelgl.KeyLeft},
	{snes.ButtonRight, pixelgl.KeyRight},
}

func (s *Screen) updateControllers() {
	onePressed := false
	for _, button := range buttons {
		pressed := s.window.Pressed(button.key)
		s.console.Poke(0, button.id, pressed)
		if pressed {
			onePressed = true
		}
	}

	if s.window.Pressed(pixelgl.KeyLeftControl) && s.window.JustPressed(pixelgl.KeyBackspace) {
		s.console.Request(common.ResetRequest)
		onePressed = true
	}
	if s.window.Pressed(pixelgl.KeyLeftControl) && s.window.JustPressed(pixelgl.KeyF5) {
		s.console.Request(common.SaveRequest)
		onePressed = true
	}
	if s.window.Pressed(pixelgl.KeyLeftControl) && s.window.JustPressed(pixelgl.KeyF9) {
		s.console.Request(common.LoadRequest)
		onePressed = true
	}

	if onePressed {
		s.window.UpdateInput()
	}
}

func (s *Screen) updateFpsTitle() {
	select {
	case <-s.fpsChannel:
		frames := s.framebuffer.Frames - s.fpsLastFrame
		s.fpsLastFrame = s.framebuffer.Frames

		s.window.SetTitle(fmt.Sprintf("GoSnes | FPS: %d", frames))
	default:
	}
}

func (s *Screen) draw() {
	s.updateSprite()

	s.sprite.Draw(s.window, pixel.IM.
		Moved(s.window.Bounds().Center()).
		ScaledXY(s.window.Bounds().Center(), pixel.V(screenFrameRatio, screenFrameRatio)))
}

func (s *Screen) updateSprite() {
	if s.framebuffer.FrameIndex == 1 {
		// the core is drawing on buffer1, the stable pixels are in buffer0
		s.sprite = pixel.NewSprite(s.buffer0, pixel.R(0, 0, common.FrameXWidth, common.FrameYHeight))
	} else {
		s.sprite = pixel.NewSprite(s.buffer1, pixel.R(0, 0, common.FrameXWidth, common.FrameYHeight))
	}
}

func (s *Screen) setSprite() {
	s.buffer0 = &pixel.PictureData{
		Pix:    s.framebuffer.Buffer0,
		Stride: common.FrameXWidth,
		Rect:   pixel.R(0, 0, common.FrameXWidth, common.FrameYHeight),
	}

	s.buffer1 = &pixel.PictureData{
		Pix:    s.framebuffer.Buffer1,
		Stride: common.FrameXWidth,
		Rect:   pixel.R(0, 0, common.FrameXWidth, common.FrameYHeight),
	}

	s.updateSprite()
}
