package watchdog

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiresOnceAfterDeadline(t *testing.T) {
	w := NewSilence()
	var fired int32
	w.Arm(20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })

	assert.True(t, w.Pending())
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&fired) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
	assert.False(t, w.Pending())
}

func TestCancelPreventsFire(t *testing.T) {
	w := NewSilence()
	var fired int32
	w.Arm(20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	w.Cancel()
	w.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestUserActivityPreventsFire(t *testing.T) {
	w := NewSilence()
	var fired int32
	w.Arm(20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	w.NotifyUserActivity()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
	assert.True(t, w.UserSpoke())
}

func TestRearmReplacesPendingTimer(t *testing.T) {
	w := NewSilence()
	var first, second int32
	w.Arm(30*time.Millisecond, func() { atomic.AddInt32(&first, 1) })
	w.Arm(30*time.Millisecond, func() { atomic.AddInt32(&second, 1) })

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&second) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&first))
}

func TestArmClearsUserSpoke(t *testing.T) {
	w := NewSilence()
	w.NotifyUserActivity()
	assert.True(t, w.UserSpoke())

	w.Arm(time.Hour, func() {})
	assert.False(t, w.UserSpoke())
	w.Cancel()
}
