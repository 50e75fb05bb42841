package a

import (
	"context"
	"time"
)

func work(ctx context.Context) {
	time.Sleep(10 * time.Millisecond) // want `Function 'work' should not call time\.Sleep`
	time.Sleep(20 * time.Millisecond) // want `Function 'work' should not call time\.Sleep`
	time.Sleep(30 * time.Millisecond) // want `Function 'work' should not call time\.Sleep`
}

func plain() {
	time.Sleep(time.Millisecond)
}

func spawn() {
	go func() {
		time.Sleep(time.Millisecond) // want `Goroutine function literal should not call time\.Sleep`
	}()
}

func handler() func(context.Context) {
	return func(ctx context.Context) {
		time.Sleep(time.Second) // want `Function literal should not call time\.Sleep`
	}
}

// The nearest enclosing function is synchronous.
func outer(ctx context.Context) {
	f := func() {
		time.Sleep(time.Millisecond)
	}
	f()
}

type Server struct{}

func (s *Server) Serve(ctx context.Context) {
	time.Sleep(time.Millisecond) // want `Method 'Server\.Serve' should not call time\.Sleep`
}

func deferred(ctx context.Context) {
	defer time.Sleep(time.Millisecond) // want `Function 'deferred' should not call time\.Sleep`
}

func nested(ctx context.Context) {
	time.Sleep((time.Millisecond)) // want `Function 'nested' should not call time\.Sleep`
}

var _ = func() int {
	time.Sleep(time.Millisecond)
	return 0
}()
