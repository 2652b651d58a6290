package workers

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/service"
)

// PeerRefresher keeps the peer cache warm. One refresh runs immediately so
// /peers is populated before the first tick; afterwards the roster is
// re-read every interval. Failures keep the previous roster.
type PeerRefresher struct {
	transfer service.TransferService
	interval time.Duration

	clock  clockwork.Clock
	logger *logger.Logger
}

func NewPeerRefresher(transfer service.TransferService, interval time.Duration, logger *logger.Logger) *PeerRefresher {
	return &PeerRefresher{
		transfer: transfer,
		interval: interval,
		clock:    clockwork.NewRealClock(),
		logger:   logger,
	}
}

// Run implements [Worker].
func (p *PeerRefresher) Run(ctx context.Context) {
	if err := p.transfer.RefreshPeers(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("initial peer refresh failed")
	}

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if err := p.transfer.RefreshPeers(ctx); err != nil {
				p.logger.Warn().Err(err).Msg("peer refresh failed")
			}
		}
	}
}
