package workers

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/service"
)

// InboxPoller periodically backfills the last-received marker from the inbox
// listing. It exists for files that arrived while the bus watch was down;
// once a last file is known the seeding becomes a no-op.
type InboxPoller struct {
	transfer service.TransferService
	interval time.Duration

	clock  clockwork.Clock
	logger *logger.Logger
}

func NewInboxPoller(transfer service.TransferService, interval time.Duration, logger *logger.Logger) *InboxPoller {
	return &InboxPoller{
		transfer: transfer,
		interval: interval,
		clock:    clockwork.NewRealClock(),
		logger:   logger,
	}
}

// Run implements [Worker].
func (p *InboxPoller) Run(ctx context.Context) {
	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if err := p.transfer.SeedInbox(ctx); err != nil {
				p.logger.Warn().Err(err).Msg("inbox seed failed")
			}
		}
	}
}
