package transitive

import (
	"context"
	"time"
)

func outer(ctx context.Context) {
	f := func() {
		time.Sleep(time.Millisecond) // want `Function 'outer' should not call time\.Sleep`
	}
	f()
}

func spawn() {
	go func() {
		retry := func() {
			time.Sleep(time.Millisecond) // want `Goroutine function literal should not call time\.Sleep`
		}
		retry()
	}()
}

func plain() {
	f := func() {
		time.Sleep(time.Millisecond)
	}
	f()
}
