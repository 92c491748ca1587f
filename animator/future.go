package animator

import "sync"

type futureState int

const (
	futurePending futureState = iota
	futureResolved
	futureFailed
)

type outcome[T any] struct {
	value T
	err   error
}

// Future carries the result of a one-shot asynchronous operation to the
// frame thread. Resolve and Fail may be called from any goroutine and only
// the first call counts. Poll and Err must only be called from the frame
// thread; they never block.
type Future[T any] struct {
	once  sync.Once
	ch    chan outcome[T]
	state futureState
	value T
	err   error
}

func NewFuture[T any]() *Future[T] {
	return &Future[T]{ch: make(chan outcome[T], 1)}
}

func (f *Future[T]) Resolve(v T) {
	f.once.Do(func() { f.ch <- outcome[T]{value: v} })
}

func (f *Future[T]) Fail(err error) {
	f.once.Do(func() { f.ch <- outcome[T]{err: err} })
}

// Poll returns the value once the operation has succeeded.
func (f *Future[T]) Poll() (T, bool) {
	f.receive()
	return f.value, f.state == futureResolved
}

// Err returns the failure, if the operation has failed.
func (f *Future[T]) Err() error {
	f.receive()
	return f.err
}

// Pending reports whether no outcome has arrived yet.
func (f *Future[T]) Pending() bool {
	f.receive()
	return f.state == futurePending
}

func (f *Future[T]) receive() {
	if f.state != futurePending {
		return
	}
	select {
	case o := <-f.ch:
		if o.err != nil {
			f.state = futureFailed
			f.err = o.err
			return
		}
		f.state = futureResolved
		f.value = o.value
	default:
	}
}
