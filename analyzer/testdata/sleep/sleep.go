package sleep

import (
	"context"
	"time"
)

func plain() {
	time.Sleep(time.Millisecond) // want `time\.Sleep should not be used \(ag:sleep\)`
}

func work(ctx context.Context) {
	time.Sleep(time.Millisecond) // want `time\.Sleep should not be used \(ag:sleep\)`
	go time.Sleep(time.Millisecond) // want `time\.Sleep should not be used \(ag:sleep\)`
}

var sleep = time.Sleep

func indirect() {
	sleep(time.Millisecond)
}

var _ = func() int {
	time.Sleep(time.Millisecond) // want `time\.Sleep should not be used \(ag:sleep\)`
	return 0
}()
