package countdown

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/borgmon/countdown/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fastTick = 5 * time.Millisecond

func TestRunner_RunsToFinish(t *testing.T) {
	store := &memoryStore{}
	runner := NewRunner(NewTimer(3, WithStore(store)), fastTick)
	defer runner.Close()

	require.True(t, runner.Start())
	assert.True(t, runner.Active())

	assert.Eventually(t, func() bool {
		return runner.Timer().State().Finished()
	}, time.Second, fastTick)

	assert.Eventually(t, func() bool {
		return !runner.Active()
	}, time.Second, fastTick)
	assert.Nil(t, store.current())
}

func TestRunner_SingleLoop(t *testing.T) {
	runner := NewRunner(NewTimer(1000), fastTick)
	defer runner.Close()

	require.True(t, runner.Start())
	assert.False(t, runner.Start())
	assert.False(t, runner.Resume())
}

func TestRunner_StopReleasesLoop(t *testing.T) {
	runner := NewRunner(NewTimer(1000), fastTick)
	defer runner.Close()

	require.True(t, runner.Start())
	time.Sleep(4 * fastTick)
	require.True(t, runner.Stop())

	assert.False(t, runner.Active())
	state := runner.Timer().State()
	assert.Equal(t, models.PhaseReady, state.Phase)
	assert.Equal(t, 1000, state.RemainingSeconds)

	time.Sleep(4 * fastTick)
	assert.Equal(t, 1000, runner.Timer().State().RemainingSeconds)
}

func TestRunner_PauseReleasesLoop(t *testing.T) {
	runner := NewRunner(NewTimer(1000, WithPause(true)), fastTick)
	defer runner.Close()

	require.True(t, runner.Start())
	time.Sleep(4 * fastTick)
	require.True(t, runner.Pause())
	assert.False(t, runner.Active())

	paused := runner.Timer().State().RemainingSeconds
	time.Sleep(4 * fastTick)
	assert.Equal(t, paused, runner.Timer().State().RemainingSeconds)

	require.True(t, runner.Start())
	assert.True(t, runner.Active())
}

func TestRunner_CloseStopsMutation(t *testing.T) {
	runner := NewRunner(NewTimer(1000), fastTick)

	require.True(t, runner.Start())
	time.Sleep(4 * fastTick)
	runner.Close()

	frozen := runner.Timer().State()
	time.Sleep(6 * fastTick)
	assert.Equal(t, frozen, runner.Timer().State())
	assert.False(t, runner.Active())
	assert.False(t, runner.Start())
	assert.False(t, runner.Resume())
}

func TestRunner_ResumeAfterRestore(t *testing.T) {
	clock := NewFakeClock(time.Now())
	store := &memoryStore{}
	store.Save(models.Snapshot{
		Running:      true,
		EndTimestamp: millis(clock.Now().Add(2 * time.Second)),
		TotalSeconds: 60,
	})

	timer := NewTimer(60, WithStore(store), WithClock(clock))
	runner := NewRunner(timer, fastTick)
	defer runner.Close()

	require.Equal(t, models.PhaseRunning, timer.Restore())
	require.True(t, runner.Resume())

	assert.Eventually(t, func() bool {
		return timer.State().Finished()
	}, time.Second, fastTick)
}

func TestRunner_ResumeRejectedWhenReady(t *testing.T) {
	runner := NewRunner(NewTimer(10), fastTick)
	defer runner.Close()

	assert.False(t, runner.Resume())
	assert.False(t, runner.Active())
}

func TestRunner_StartRacingCloseNeverMutatesAfterClose(t *testing.T) {
	for i := 0; i < 200; i++ {
		timer := NewTimer(1000)
		runner := NewRunner(timer, time.Hour)

		var closed atomic.Bool
		var lateStarts atomic.Int32
		timer.OnChange(func(s models.State) {
			if closed.Load() && s.Running() {
				lateStarts.Add(1)
			}
		})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			runner.Start()
		}()

		runner.Close()
		closed.Store(true)
		wg.Wait()

		require.Zero(t, lateStarts.Load(), "iteration %d", i)
		assert.False(t, runner.Active())
	}
}
