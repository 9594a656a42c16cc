package optimistic

import (
	"context"
	"time"
)

// Poller runs fn immediately and then on a fixed interval until Stop or
// context cancellation, whichever comes first.
type Poller struct {
	cancel context.CancelFunc
}

func StartPoller(ctx context.Context, interval time.Duration, fn func(context.Context)) *Poller {
	ctx, cancel := context.WithCancel(ctx)
	p := &Poller{cancel: cancel}

	go func() {
		fn(ctx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn(ctx)
			}
		}
	}()

	return p
}

func (p *Poller) Stop() {
	p.cancel()
}
