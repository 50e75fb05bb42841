package a

import (
	"context"
	"time"
)

func lineNoLint(ctx context.Context) {
	time.Sleep(time.Millisecond) //nolint:asyncguard
}

//nolint:asyncguard
func funcNoLint(ctx context.Context) {
	time.Sleep(time.Millisecond)
	_ = fetch(context.Background(), "x")
}

func otherLinter(ctx context.Context) {
	_ = fetch(context.Background(), "x") //nolint:errcheck // want `Propagate context 'ctx'`
}
