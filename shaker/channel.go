package shaker

// Tracks the fade in, duration and fade out of a shake and turns it
// into offsets using the configured [Shaker].
//
// Multiple channels are useful when different shakes need to be
// active at the same time:
//   - An always-on shake for camera motion or environment shaking,
//     like being in a ship or hot air balloon.
//   - Triggered shakes for momentary impacts, explosions, earthquakes
//     and so on.
//   - Altered states like drunk or confused.
//
// The zero value is a valid channel with no shaker. Channels without
// a shaker keep their timing but don't produce offsets.
type Channel struct {
	shaker    Shaker
	elapsed   Ticks
	fadeIn    Ticks
	duration  Ticks
	fadeOut   Ticks
	offsetX   float64
	offsetY   float64
	wasActive bool
}

func NewChannel(shaker Shaker) *Channel {
	return &Channel{shaker: shaker}
}

func (self *Channel) Shaker() Shaker { return self.shaker }

func (self *Channel) SetShaker(shaker Shaker) {
	self.shaker = shaker
}

// Starts a shake that fades in, lasts for the given duration and
// then fades out. Replaces any shake already in progress, continuing
// from its current activity level.
func (self *Channel) Trigger(fadeIn, duration, fadeOut Ticks) {
	self.Start(fadeIn)
	self.duration = duration
	self.fadeOut = fadeOut
}

// Starts a shake that lasts until [Channel.End]() is called. If the
// channel is already fading in with the same duration, the call is
// ignored.
func (self *Channel) Start(fadeIn Ticks) {
	if self.fadeIn == fadeIn && self.IsFadingIn() {
		return
	}
	activity := self.Activity()
	self.fadeIn = fadeIn
	self.duration = Forever
	self.fadeOut = 0
	self.elapsed = Ticks(float64(fadeIn) * activity)
}

// Fades out the current shake, starting from its current activity
// level. Does nothing if the channel isn't shaking or is already
// fading out with the same duration.
func (self *Channel) End(fadeOut Ticks) {
	if !self.IsShaking() || (self.fadeOut == fadeOut && self.IsFadingOut()) {
		return
	}
	activity := self.Activity()
	self.fadeIn = 0
	self.duration = 0
	self.fadeOut = fadeOut
	self.elapsed = Ticks(float64(fadeOut) * (1.0 - activity))
}

func (self *Channel) IsFadingIn() bool {
	return self.elapsed > 0 && self.elapsed < self.fadeIn
}

func (self *Channel) IsFadingOut() bool {
	toFadeOut := self.fadeIn + self.duration
	return self.elapsed >= toFadeOut && self.elapsed < toFadeOut+self.fadeOut
}

func (self *Channel) IsShaking() bool {
	return self.elapsed < self.fadeIn+self.duration+self.fadeOut
}

// Returns the current shake level, between 0 and 1.
func (self *Channel) Activity() float64 {
	if !self.IsShaking() {
		return 0
	}
	if self.elapsed < self.fadeIn {
		return float64(self.elapsed) / float64(self.fadeIn)
	}
	elapsed := self.elapsed - self.fadeIn
	if elapsed < self.duration {
		return 1.0
	} // shake in progress
	elapsed -= self.duration
	return 1.0 - float64(elapsed)/float64(self.fadeOut)
}

// Returns the offsets computed on the last update.
func (self *Channel) Offsets() (float64, float64) {
	return self.offsetX, self.offsetY
}

// Advances the channel by one tick and recomputes its offsets.
func (self *Channel) Update() {
	if self.IsShaking() {
		self.wasActive = true
		activity := self.Activity()
		if self.shaker != nil {
			self.offsetX, self.offsetY = self.shaker.GetShakeOffsets(activity)
		}
		self.elapsed += 1
	} else if self.wasActive {
		if self.shaker != nil {
			_, _ = self.shaker.GetShakeOffsets(0.0) // termination call
		}
		self.offsetX, self.offsetY = 0.0, 0.0
		self.wasActive = false
	}
}
