//nolint:asyncguard
package nolint

import (
	"context"
	"time"
)

func work(ctx context.Context) {
	time.Sleep(time.Millisecond)
}
