package elicit

import (
	"context"
	"sync"
	"time"
)

// startHeartbeat calls tick every interval until the returned stop
// function is called or ctx ends. stop blocks until the ticking
// goroutine has exited, so no tick runs after stop returns. stop is
// safe to call more than once.
func startHeartbeat(ctx context.Context, interval time.Duration, tick func(context.Context)) (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Go(func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-t.C:
				// A tick and stop can race; stop wins.
				select {
				case <-done:
					return
				default:
				}
				tick(ctx)
			}
		}
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}
