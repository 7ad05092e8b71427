package tween

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/edwinsyarief/quicktween"
)

func TestManagerRunsTweensToCompletion(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	manager := NewManager(zap.New(core))

	a := &quicktween.Value{}
	b := &quicktween.Value{}
	idA := manager.Start(New().To(a, 0.5, quicktween.One).Named("a"))
	idB := manager.Start(New().To(b, 1, quicktween.One).Named("b"))
	require.NotEqual(t, idA, idB)
	assert.Equal(t, 2, manager.Len())

	manager.Update(0.5)
	assert.False(t, manager.IsRunning(idA))
	assert.True(t, manager.IsRunning(idB))
	assert.Equal(t, quicktween.One, a.Current)

	manager.Update(0.5)
	assert.Equal(t, 0, manager.Len())
	assert.Equal(t, quicktween.One, b.Current)

	assert.Equal(t, 2, logs.FilterMessage("tween started").Len())
	completed := logs.FilterMessage("tween completed").All()
	require.Len(t, completed, 2)
	assert.Equal(t, "a", completed[0].ContextMap()["name"])
	assert.Equal(t, "tween", completed[0].LoggerName)
}

func TestManagerStop(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	manager := NewManager(zap.New(core))

	value := &quicktween.Value{}
	id := manager.Start(New().To(value, 1, quicktween.One))
	manager.Update(0.25)

	assert.True(t, manager.Stop(id))
	assert.False(t, manager.Stop(id))
	assert.False(t, manager.Stop(uuid.New()))
	assert.False(t, manager.IsRunning(id))

	manager.Update(1)
	assert.InDelta(t, 0.25, value.Current.X, 1e-6)
	assert.Equal(t, 1, logs.FilterMessage("tween stopped").Len())
	assert.Equal(t, 0, logs.FilterMessage("tween completed").Len())
}

func TestManagerStopAll(t *testing.T) {
	manager := NewManager(nil)
	tweens := []*Tween{
		New().Delay(1),
		New().Delay(2),
		New().Delay(3),
	}
	for _, tw := range tweens {
		manager.Start(tw)
	}
	manager.StopAll()
	assert.Equal(t, 0, manager.Len())
	for _, tw := range tweens {
		assert.True(t, tw.IsStopped())
	}
}

func TestManagerCallbacksCanStartAndStopTweens(t *testing.T) {
	manager := NewManager(nil)
	value := &quicktween.Value{}

	var victim uuid.UUID
	follow := New().To(value, 0.5, quicktween.V3(2, 0, 0))
	first := New().
		To(value, 0.5, quicktween.One).
		Call(func() {
			manager.Start(follow)
			manager.Stop(victim)
		})
	manager.Start(first)
	victim = manager.Start(New().Delay(10))

	manager.Update(0.5)
	assert.Equal(t, 1, manager.Len())
	assert.False(t, manager.IsRunning(victim))

	manager.Update(0.5)
	assert.Equal(t, 0, manager.Len())
	assert.Equal(t, quicktween.V3(2, 0, 0), value.Current)
}

func TestManagerConcurrentStart(t *testing.T) {
	manager := NewManager(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				manager.Start(New().Delay(0.1))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, manager.Len())

	manager.Update(0.1)
	assert.Equal(t, 0, manager.Len())
}

func TestManagerConcurrentUpdate(t *testing.T) {
	manager := NewManager(nil)
	var value float64
	var calls int
	manager.Start(New().Scalar(1, 0, 1, func(v float64) {
		value = v
		calls += 1
	}))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 30; j++ {
				manager.Update(0.01)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, manager.Len())
	assert.Equal(t, 1.0, value)
	assert.LessOrEqual(t, calls, 120)
}
