package tween

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Keeps track of running tweens and advances all of them at once.
// Typically there's one manager per game or scene, updated once per
// tick:
//
//	func (g *Game) Update() error {
//		g.tweens.Update(1.0 / float64(ebiten.TPS()))
//		...
//	}
//
// All methods are safe for concurrent use, and tween callbacks may
// start or stop other tweens on the same manager. Concurrent calls
// to [Manager.Update]() are serialized, but a callback must not call
// Update on its own manager.
type Manager struct {
	updating sync.Mutex
	mutex    sync.Mutex
	running  map[uuid.UUID]*Tween
	order    []uuid.UUID
	logger   *zap.Logger
}

// Creates a manager. A nil logger disables logging.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		running: make(map[uuid.UUID]*Tween),
		logger:  logger.Named("tween"),
	}
}

// Starts running the given tween and returns its id. The tween will
// receive its first update on the next [Manager.Update]().
func (self *Manager) Start(tween *Tween) uuid.UUID {
	if tween == nil {
		panic(nilTarget)
	}

	id := uuid.New()
	self.mutex.Lock()
	self.running[id] = tween
	self.order = append(self.order, id)
	self.mutex.Unlock()

	self.logger.Debug("tween started",
		zap.Stringer("id", id),
		zap.String("name", tween.Name()),
		zap.Float64("duration", tween.Duration()),
	)
	return id
}

// Stops the tween with the given id. Returns false if no such tween
// is running.
func (self *Manager) Stop(id uuid.UUID) bool {
	self.mutex.Lock()
	tween, found := self.running[id]
	if found {
		self.remove(id)
	}
	self.mutex.Unlock()

	if !found {
		return false
	}
	tween.Stop()
	self.logger.Debug("tween stopped", zap.Stringer("id", id), zap.String("name", tween.Name()))
	return true
}

// Stops all running tweens.
func (self *Manager) StopAll() {
	self.mutex.Lock()
	stopped := self.running
	self.running = make(map[uuid.UUID]*Tween)
	self.order = self.order[:0]
	self.mutex.Unlock()

	for _, tween := range stopped {
		tween.Stop()
	}
	if len(stopped) > 0 {
		self.logger.Debug("all tweens stopped", zap.Int("count", len(stopped)))
	}
}

// Advances all running tweens by dt seconds, in the order they were
// started. Finished tweens are removed.
func (self *Manager) Update(dt float64) {
	self.updating.Lock()
	defer self.updating.Unlock()

	self.mutex.Lock()
	ids := append([]uuid.UUID(nil), self.order...)
	tweens := make([]*Tween, len(ids))
	for i, id := range ids {
		tweens[i] = self.running[id]
	}
	self.mutex.Unlock()

	for i, tween := range tweens {
		if !tween.Update(dt) {
			continue
		}

		self.mutex.Lock()
		_, stillTracked := self.running[ids[i]]
		if stillTracked {
			self.remove(ids[i])
		}
		self.mutex.Unlock()

		if stillTracked && !tween.IsStopped() {
			self.logger.Debug("tween completed", zap.Stringer("id", ids[i]), zap.String("name", tween.Name()))
		}
	}
}

// Returns whether the tween with the given id is still running.
func (self *Manager) IsRunning(id uuid.UUID) bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	_, found := self.running[id]
	return found
}

// Returns the number of running tweens.
func (self *Manager) Len() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.running)
}

// must be called with the mutex held
func (self *Manager) remove(id uuid.UUID) {
	delete(self.running, id)
	for i, other := range self.order {
		if other == id {
			self.order = append(self.order[:i], self.order[i+1:]...)
			return
		}
	}
}
