package workers

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/service"
	"github.com/meshdrive/meshdrive/internal/tailnet"
)

// inboundQueueSize bounds the hand-off between the bus read loop and the
// consumer. The read loop must never block: the upstream bus drops events on
// a stalled reader, so a full queue sheds the event here instead of stalling
// the scanner.
const inboundQueueSize = 256

// BusWatcher keeps a watch on the overlay event bus, forwarding completed
// inbound transfers to the transfer service. The service call (index update
// plus history insert) runs on its own goroutine behind a buffered queue so
// the stream reader stays free of blocking calls. A broken stream is
// reconnected after reconnectDelay; cancellation ends the loop.
type BusWatcher struct {
	backend        tailnet.LocalAPI
	transfer       service.TransferService
	reconnectDelay time.Duration

	clock  clockwork.Clock
	logger *logger.Logger
}

func NewBusWatcher(backend tailnet.LocalAPI, transfer service.TransferService, reconnectDelay time.Duration, logger *logger.Logger) *BusWatcher {
	return &BusWatcher{
		backend:        backend,
		transfer:       transfer,
		reconnectDelay: reconnectDelay,
		clock:          clockwork.NewRealClock(),
		logger:         logger,
	}
}

// Run implements [Worker].
func (w *BusWatcher) Run(ctx context.Context) {
	inbound := make(chan tailnet.InboundFile, inboundQueueSize)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for f := range inbound {
			w.transfer.HandleInbound(ctx, f.Name, f.Path, f.Size)
		}
	}()

	defer wg.Wait()
	defer close(inbound)

	for {
		err := w.backend.Watch(ctx, func(f tailnet.InboundFile) {
			select {
			case inbound <- f:
			default:
				w.logger.Warn().Str("name", f.Name).Msg("inbound queue full, shedding bus event")
			}
		})

		if ctx.Err() != nil {
			return
		}
		if err != nil {
			w.logger.Warn().Err(err).Msg("bus watch interrupted, reconnecting")
		}

		select {
		case <-ctx.Done():
			return
		case <-w.clock.After(w.reconnectDelay):
		}
	}
}
