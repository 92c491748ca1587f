package animator

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFutureResolvesFromAnotherGoroutine(t *testing.T) {
	f := NewFuture[int]()
	_, ok := f.Poll()
	assert.False(t, ok)
	assert.True(t, f.Pending())

	done := make(chan struct{})
	go func() {
		f.Resolve(7)
		close(done)
	}()
	<-done

	v, ok := f.Poll()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.NoError(t, f.Err())
	assert.False(t, f.Pending())
}

func TestFutureFirstOutcomeWins(t *testing.T) {
	f := NewFuture[string]()
	f.Fail(errors.New("missing file"))
	f.Resolve("late")

	_, ok := f.Poll()
	assert.False(t, ok)
	assert.EqualError(t, f.Err(), "missing file")

	// Failure is permanent.
	time.Sleep(time.Millisecond)
	_, ok = f.Poll()
	assert.False(t, ok)
	assert.False(t, f.Pending())
}
