// Package camera provides a 2D camera that follows a target through
// a [tracker.Tracker] and shakes through any number of [shaker.Channel]
// values.
//
// The camera is advanced once per game update with [Camera.Update](),
// after which [Camera.Area]() reports the logical area to draw.
package camera

import (
	"image"
	"math"

	"go.uber.org/zap"

	"github.com/edwinsyarief/quicktween/shaker"
	"github.com/edwinsyarief/quicktween/tracker"
)

// Identifies a shaker channel. Channel zero is special and will use
// a fallback [shaker.Keyframed] even if uninitialized. It's also the
// channel selected by the shake methods when no channel is passed.
//
// If you need multiple channels, define your own constants:
//
//	const (
//		ChanBackground camera.ShakerChannel = iota
//		ChanTrigger
//		ChanDrunk
//	)
type ShakerChannel uint8

type Camera struct {
	width  int
	height int
	ups    int

	tracker          tracker.Tracker
	currentX         float64
	currentY         float64
	targetX          float64
	targetY          float64
	prevSpeedX       float64
	prevSpeedY       float64
	shakerChannels   []shaker.Channel
	shakerOffsetX    float64
	shakerOffsetY    float64
	area             image.Rectangle
	logger           *zap.Logger
	wasShakingLogged bool
}

// Creates a camera with the given logical viewport size, for a game
// running at the given updates per second. The camera starts centered
// at (0, 0) and uses a [tracker.Linear] until another tracker is set.
// A nil logger disables logging.
func New(width, height, ups int, logger *zap.Logger) *Camera {
	if width <= 0 || height <= 0 {
		panic(invalidViewport)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	camera := &Camera{
		width:          width,
		height:         height,
		ups:            max(ups, 1),
		shakerChannels: make([]shaker.Channel, 1),
		logger:         logger.Named("camera"),
	}
	camera.updateArea()
	return camera
}

// --- tracking ---

// Returns the current tracker, or nil if the fallback is in use.
func (self *Camera) Tracker() tracker.Tracker {
	return self.tracker
}

// Sets the tracker in charge of updating the camera position.
// Passing nil restores the fallback [tracker.Linear].
func (self *Camera) SetTracker(tracker tracker.Tracker) {
	self.tracker = tracker
}

// Feeds the camera the newest target coordinates to look at. The
// time that it takes to reach them depends on the current tracker.
func (self *Camera) NotifyCoordinates(x, y float64) {
	self.targetX, self.targetY = x, y
}

// Immediately sets the camera coordinates to the given values.
func (self *Camera) ResetCoordinates(x, y float64) {
	self.targetX, self.targetY = x, y
	self.currentX, self.currentY = x, y
	self.prevSpeedX, self.prevSpeedY = 0, 0
	self.updateArea()
}

// Returns the current center of the camera, without shake.
func (self *Camera) Coordinates() (x, y float64) {
	return self.currentX, self.currentY
}

// Returns the logical area to draw. Changes after each update, since
// the camera might be moving or shaking.
func (self *Camera) Area() image.Rectangle {
	return self.area
}

// Similar to [Camera.Area](), but without rounding.
func (self *Camera) AreaF64() (minX, minY, maxX, maxY float64) {
	minX = self.currentX - float64(self.width)/2.0 + self.shakerOffsetX
	minY = self.currentY - float64(self.height)/2.0 + self.shakerOffsetY
	return minX, minY, minX + float64(self.width), minY + float64(self.height)
}

// Returns the combined offsets of all shaker channels.
func (self *Camera) ShakeOffsets() (x, y float64) {
	return self.shakerOffsetX, self.shakerOffsetY
}

// Advances tracking and shakes by one update.
func (self *Camera) Update() {
	self.updateTracking()
	self.updateShake()
	self.updateArea()
}

func (self *Camera) updateTracking() {
	changeX, changeY := self.internalTracker().Update(
		self.currentX, self.currentY,
		self.targetX, self.targetY,
		self.prevSpeedX, self.prevSpeedY,
	)
	self.currentX += changeX
	self.currentY += changeY
	updateDelta := 1.0 / float64(self.ups)
	self.prevSpeedX = changeX / updateDelta
	self.prevSpeedY = changeY / updateDelta
}

func (self *Camera) internalTracker() tracker.Tracker {
	if self.tracker != nil {
		return self.tracker
	}
	return tracker.Linear{Width: float64(self.width), Height: float64(self.height), UPS: self.ups}
}

func (self *Camera) updateShake() {
	if self.shakerChannels[0].Shaker() == nil {
		keyframed := shaker.NewKeyframed(nil)
		keyframed.UPS = self.ups
		self.shakerChannels[0].SetShaker(keyframed)
	}

	var offsetX, offsetY float64
	for i := range self.shakerChannels {
		self.shakerChannels[i].Update()
		x, y := self.shakerChannels[i].Offsets()
		offsetX += x
		offsetY += y
	}
	self.shakerOffsetX = offsetX
	self.shakerOffsetY = offsetY

	shaking := self.IsShaking()
	if shaking != self.wasShakingLogged {
		self.logger.Debug("camera shake changed", zap.Bool("shaking", shaking))
		self.wasShakingLogged = shaking
	}
}

func (self *Camera) updateArea() {
	minX, minY, maxX, maxY := self.AreaF64()
	self.area = image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// --- screen shaking ---

// Returns the shaker associated to the given channel (or to the
// default channel zero if none is passed). Passing multiple
// channels will make the function panic.
func (self *Camera) Shaker(channels ...ShakerChannel) shaker.Shaker {
	switch {
	case len(channels) == 0:
		return self.shakerChannels[0].Shaker()
	case len(channels) > 1:
		panic("can't get the shaker of multiple channels at once")
	case int(channels[0]) >= len(self.shakerChannels):
		return nil
	default:
		return self.shakerChannels[channels[0]].Shaker()
	}
}

// Sets the shaker of the given channel (or of the default channel
// zero if none is passed). Passing multiple channels will make the
// function panic.
func (self *Camera) SetShaker(newShaker shaker.Shaker, channels ...ShakerChannel) {
	if len(channels) > 1 {
		panic("can't pass multiple shaker channels to SetShaker")
	}
	if len(channels) == 0 {
		self.shakerChannels[0].SetShaker(newShaker)
		return
	}

	index := int(channels[0])
	if newShaker == nil && index >= len(self.shakerChannels) {
		return
	}
	for index >= len(self.shakerChannels) {
		self.shakerChannels = append(self.shakerChannels, shaker.Channel{})
	}
	self.shakerChannels[index] = *shaker.NewChannel(newShaker)

	// compact nils at the end of the slice
	last := len(self.shakerChannels)
	for last > 1 && self.shakerChannels[last-1].Shaker() == nil {
		last -= 1
	}
	self.shakerChannels = self.shakerChannels[:last]
}

// Starts a shake that lasts until [Camera.EndShake]() is called.
func (self *Camera) StartShake(fadeIn shaker.Ticks, channels ...ShakerChannel) {
	self.eachChannel("StartShake", channels, func(channel *shaker.Channel) {
		channel.Start(fadeIn)
	})
}

func (self *Camera) EndShake(fadeOut shaker.Ticks, channels ...ShakerChannel) {
	self.eachChannel("EndShake", channels, func(channel *shaker.Channel) {
		channel.End(fadeOut)
	})
}

// Starts a shake with a fixed duration.
func (self *Camera) TriggerShake(fadeIn, duration, fadeOut shaker.Ticks, channels ...ShakerChannel) {
	self.eachChannel("TriggerShake", channels, func(channel *shaker.Channel) {
		channel.Trigger(fadeIn, duration, fadeOut)
	})
}

// Returns whether the given channel is shaking. Without arguments,
// returns whether any channel is shaking. Passing multiple channels
// will make the function panic.
func (self *Camera) IsShaking(channels ...ShakerChannel) bool {
	if len(channels) > 1 {
		panic("IsShaking accepts at most one shaker channel as argument")
	}

	if len(channels) == 0 {
		for i := range self.shakerChannels {
			if self.shakerChannels[i].IsShaking() {
				return true
			}
		}
		return false
	}
	if !self.shakerChannelAccessible(channels[0]) {
		return false
	}
	return self.shakerChannels[channels[0]].IsShaking()
}

func (self *Camera) eachChannel(op string, channels []ShakerChannel, fn func(*shaker.Channel)) {
	if len(channels) == 0 {
		fn(&self.shakerChannels[0])
		return
	}
	for _, channel := range channels {
		if !self.shakerChannelAccessible(channel) {
			panic("can't " + op + " on uninitialized channels")
		}
		fn(&self.shakerChannels[channel])
	}
}

func (self *Camera) shakerChannelAccessible(channel ShakerChannel) bool {
	return channel == 0 || (int(channel) < len(self.shakerChannels) &&
		self.shakerChannels[channel].Shaker() != nil)
}

// --- errors ---
const invalidViewport = "camera viewport width and height must be positive"
