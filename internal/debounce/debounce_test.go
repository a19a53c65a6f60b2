package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew_DefaultDuration(t *testing.T) {
	assert.Equal(t, DefaultSearchDelay, New(0).Duration())
	assert.Equal(t, 50*time.Millisecond, New(50*time.Millisecond).Duration())
}

func TestSchedule_SingleCall(t *testing.T) {
	var called int32
	d := New(30 * time.Millisecond)

	d.Schedule(func() {
		atomic.AddInt32(&called, 1)
	})

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&called))
}

func TestSchedule_RapidCallsCollapse(t *testing.T) {
	var called int32
	var lastValue int32
	d := New(50 * time.Millisecond)

	for i := 1; i <= 10; i++ {
		value := int32(i)
		d.Schedule(func() {
			atomic.StoreInt32(&lastValue, value)
			atomic.AddInt32(&called, 1)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, int32(1), atomic.LoadInt32(&called))
	assert.Equal(t, int32(10), atomic.LoadInt32(&lastValue))
}

func TestSchedule_NewTokenInvalidatesOld(t *testing.T) {
	d := New(time.Hour)

	first := d.Schedule(func() {})
	second := d.Schedule(func() {})

	assert.False(t, d.IsCurrent(first))
	assert.True(t, d.IsCurrent(second))

	d.Cancel()
	assert.False(t, d.IsCurrent(second))
}

func TestNext_TokensWithoutTimer(t *testing.T) {
	d := New(time.Hour)

	first := d.Next()
	second := d.Next()

	assert.NotEqual(t, first, second)
	assert.False(t, d.IsCurrent(first))
	assert.True(t, d.IsCurrent(second))
}

func TestNext_SupersedesScheduled(t *testing.T) {
	var called int32
	d := New(20 * time.Millisecond)

	d.Schedule(func() {
		atomic.AddInt32(&called, 1)
	})
	d.Next()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&called))
}

func TestCancel(t *testing.T) {
	var called int32
	d := New(20 * time.Millisecond)

	d.Schedule(func() {
		atomic.AddInt32(&called, 1)
	})
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&called))
}
