package a

import (
	"context"
	. "time"
)

func dotted(ctx context.Context) {
	Sleep(Second) // want `Function 'dotted' should not call time\.Sleep`
}

func notTime(ctx context.Context) {
	sleep := func(Duration) {}
	sleep(Second)
}
