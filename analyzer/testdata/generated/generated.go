// Code generated by hand. DO NOT EDIT.

package generated

import (
	"context"
	"time"
)

func work(ctx context.Context) {
	time.Sleep(time.Millisecond)
}
