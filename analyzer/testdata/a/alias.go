package a

import (
	"context"
	clock "time"
)

func aliased(ctx context.Context) {
	clock.Sleep(clock.Second) // want `Function 'aliased' should not call time\.Sleep`
}
