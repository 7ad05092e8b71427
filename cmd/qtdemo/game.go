package main

import (
	"image/color"
	"math"
	"sync"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"

	"github.com/edwinsyarief/quicktween"
	"github.com/edwinsyarief/quicktween/camera"
	"github.com/edwinsyarief/quicktween/node"
	"github.com/edwinsyarief/quicktween/preset"
	"github.com/edwinsyarief/quicktween/shaker"
	"github.com/edwinsyarief/quicktween/tween"
	"github.com/edwinsyarief/quicktween/utils"
)

const (
	logicalWidth  = 160
	logicalHeight = 120
	gridStep      = 16
)

var (
	backgroundColor = utils.RGB(24, 20, 37)
	gridColor       = color.NRGBA{58, 68, 102, 255}
	boxColor        = color.NRGBA{254, 174, 52, 255}
	flashColor      = color.NRGBA(colornames.White)
)

type game struct {
	logger  *zap.Logger
	tweens  *tween.Manager
	camera  *camera.Camera
	screen  *offscreen
	box     *node.Sprite
	boxImg  *ebiten.Image
	dotImg  *ebiten.Image
	faded   bool
	mutex   sync.Mutex
	presets *preset.Library
}

func newGame(presets *preset.Library, logger *zap.Logger) *game {
	box := node.NewSprite("box", boxColor)
	cam := camera.New(logicalWidth, logicalHeight, ebiten.TPS(), logger)
	cam.ResetCoordinates(0, 0)
	return &game{
		logger:  logger,
		tweens:  tween.NewManager(logger),
		camera:  cam,
		screen:  newOffscreen(logicalWidth, logicalHeight),
		box:     box,
		boxImg:  maskToImage(8, boxMask, flashColor, utils.LerpNRGBA(boxColor, color.NRGBA{A: 255}, 0.4)),
		dotImg:  maskToImage(1, []uint8{1}),
		presets: presets,
	}
}

var boxMask = []uint8{
	2, 2, 2, 2, 2, 2, 2, 2,
	2, 1, 1, 1, 1, 1, 1, 2,
	2, 1, 2, 1, 1, 2, 1, 2,
	2, 1, 1, 1, 1, 1, 1, 2,
	2, 1, 1, 1, 1, 1, 1, 2,
	2, 1, 2, 2, 2, 2, 1, 2,
	2, 1, 1, 1, 1, 1, 1, 2,
	2, 2, 2, 2, 2, 2, 2, 2,
}

// Replaces the presets in use. Called from the preset watcher.
func (self *game) setPresets(presets *preset.Library) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.presets = presets
}

func (self *game) library() *preset.Library {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.presets
}

func (self *game) Update() error {
	self.handleInput()
	self.tweens.Update(1.0 / float64(ebiten.TPS()))

	// the world is Y-up, the screen Y-down
	position := self.box.WorldPosition()
	self.camera.NotifyCoordinates(position.X, -position.Y)
	self.camera.Update()
	return nil
}

func (self *game) handleInput() {
	presets := self.library()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		self.punch(presets)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		self.shake(presets)
	case inpututil.IsKeyJustPressed(ebiten.KeyJ):
		self.jump(presets)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		ups := shaker.Ticks(ebiten.TPS())
		self.camera.TriggerShake(ups/8, ups/2, ups/3)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		alpha := uint8(255)
		if !self.faded {
			alpha = 64
		}
		self.faded = !self.faded
		self.tweens.Start(self.box.TweenOpacity(alpha, 0.4, tween.WithEasingName("quadInOut")))
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		self.tweens.StopAll()
		self.box.SetPosition(quicktween.Zero)
		self.box.SetScale(quicktween.One)
		self.box.SetEulerAngles(quicktween.Zero)
		self.box.SetColor(boxColor)
		self.faded = false
		self.camera.ResetCoordinates(0, 0)
	}
}

func (self *game) punch(presets *preset.Library) {
	restore := boxColor
	restore.A = self.box.Color().A
	flash := self.box.TweenColor(flashColor, 0.05).
		Then(self.box.TweenColor(restore, 0.2))
	self.tweens.Start(flash)

	if spec, err := presets.Punch("hit"); err == nil {
		self.tweens.Start(spec.Apply(self.box.Node))
	} else {
		self.logger.Debug("using built-in punch", zap.Error(err))
		self.tweens.Start(self.box.PunchPosition(quicktween.V3(0, 8, 0), 0.3, node.DefaultPunchVibrato, node.DefaultPunchElasticity))
	}
	if spec, err := presets.Punch("squash"); err == nil {
		self.tweens.Start(self.box.PunchScale(spec.Direction.Vector(), spec.Duration, spec.Vibrato, spec.Elasticity))
	}
}

func (self *game) shake(presets *preset.Library) {
	spec, err := presets.Shake("hurt")
	if err != nil {
		self.logger.Debug("using built-in shake", zap.Error(err))
		self.tweens.Start(self.box.ShakePosition(0.5, quicktween.ShakeOptions{
			Strength:    quicktween.UniformStrength(4),
			Vibrato:     20,
			Randomness:  90,
			IgnoreZAxis: true,
			FadeOut:     true,
		}))
	} else {
		self.tweens.Start(spec.Apply(self.box.Node))
	}
	self.tweens.Start(self.box.ShakeRotation(0.4, quicktween.ShakeOptions{
		Strength:    quicktween.V3(0, 0, 15),
		Vibrato:     12,
		Randomness:  45,
		FadeOut:     true,
		VectorBased: true,
	}))
}

func (self *game) jump(presets *preset.Library) {
	if spec, err := presets.Jump("hop"); err == nil {
		self.tweens.Start(spec.Apply(self.box.Node))
		return
	}
	to := self.box.Position().Add(quicktween.V3(32, 0, 0))
	self.tweens.Start(self.box.JumpPosition(to, 16, 1, 0.6))
}

func (self *game) Draw(hiResCanvas *ebiten.Image) {
	self.screen.Fill(backgroundColor)
	minX, minY, maxX, maxY := self.camera.AreaF64()

	// ground grid, to make camera movement visible
	startX := math.Floor(minX/gridStep) * gridStep
	startY := math.Floor(minY/gridStep) * gridStep
	for y := startY; y <= maxY; y += gridStep {
		for x := startX; x <= maxX; x += gridStep {
			at := ebimath.V(math.Floor(x-minX), math.Floor(y-minY))
			self.screen.DrawCentered(self.dotImg, at, 1, 1, 0, gridColor)
		}
	}

	position := self.box.WorldPosition()
	scale := self.box.WorldScale()
	radians := -self.box.EulerAngles().Z * math.Pi / 180.0
	at := ebimath.V(position.X-minX, -position.Y-minY)
	self.screen.DrawCentered(self.boxImg, at, scale.X, scale.Y, radians, self.box.Color())

	hiResCanvas.Fill(colornames.Black)
	self.screen.Project(hiResCanvas)
}

func (self *game) Layout(logicWinWidth, logicWinHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	return int(float64(logicWinWidth) * scale), int(float64(logicWinHeight) * scale)
}
