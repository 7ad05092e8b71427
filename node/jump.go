package node

import (
	"github.com/edwinsyarief/quicktween"
	"github.com/edwinsyarief/quicktween/tween"
)

// Accumulates the three tracks of a jump and composes the position.
type jumpState struct {
	start  quicktween.Vector3
	to     quicktween.Vector3
	bounce float64 // height above the baseline
	rise   float64 // progress of the baseline from start.Y to to.Y
	travel float64 // progress on the X and Z axes
}

func (self *jumpState) position() quicktween.Vector3 {
	return quicktween.Vector3{
		X: self.start.X + (self.to.X-self.start.X)*self.travel,
		Y: self.start.Y + (self.to.Y-self.start.Y)*self.rise + self.bounce,
		Z: self.start.Z + (self.to.Z-self.start.Z)*self.travel,
	}
}

// Moves the node to the given local position with jumpNum parabolic
// hops of the given height. The hops run on top of an eased vertical
// move towards to.Y and a linear move on X and Z, and the node always
// lands exactly on the target. A jumpNum below 1 is treated as 1.
func (self *Node) JumpPosition(to quicktween.Vector3, jumpHeight float64, jumpNum int, duration float64) *tween.Tween {
	jumpNum = max(jumpNum, 1)
	hop := duration / float64(2*jumpNum)
	state := &jumpState{to: to}
	track := func(field *float64) func(float64) {
		return func(value float64) {
			*field = value
			self.SetPosition(state.position())
		}
	}

	bounce := tween.New().
		Scalar(hop, 0, jumpHeight, track(&state.bounce), tween.WithEasingName("quadOut")).
		Scalar(hop, jumpHeight, 0, track(&state.bounce), tween.WithEasingName("quadIn")).
		Repeat(jumpNum)
	rise := tween.New().Scalar(duration, 0, 1, track(&state.rise), tween.WithEasingName("quadOut"))
	travel := tween.New().Scalar(duration, 0, 1, track(&state.travel))

	return tween.New().
		Call(func() {
			*state = jumpState{start: self.Position(), to: to}
		}).
		Parallel(bounce, rise, travel).
		Call(func() { self.SetPosition(to) })
}
