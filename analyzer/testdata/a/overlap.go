package a

import (
	"context"
	"time"
)

func timeout(ctx context.Context) time.Duration { return time.Millisecond }

// The delay fix covers the argument; the context fix is left for the next run.
func sleepTimeout(ctx context.Context) {
	time.Sleep(timeout(context.Background())) // want `Function 'sleepTimeout' should not call time\.Sleep` `Propagate context 'ctx' instead of explicit empty context in call to timeout`
}
