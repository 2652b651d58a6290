package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/meshdrive/meshdrive/internal/config"
	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/models"
)

// channelCapacity bounds the command and event channels. The foreground
// never blocks: a full command channel rejects the enqueue. The background
// task blocks on a full event channel, so every accepted command still
// yields exactly one event once the consumer catches up.
const channelCapacity = 64

// Client is the mobile node's connection to a desktop. All network I/O runs
// in one background goroutine started by Start; the foreground interacts
// only through Enqueue, Events, and the notification queue.
type Client struct {
	cfg    config.Client
	logger *logger.Logger

	api   *desktopAPI
	cache *stateCache
	queue *NotificationQueue
	clock clockwork.Clock

	mu       sync.Mutex
	commands chan Command
	events   chan Event
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	// Poll state below is owned by the background goroutine while it runs.
	lastPoll  time.Time
	connected bool
	peers     []models.PeerInfo
	projects  []models.SyncProject
	observer  statusObserver
}

// New constructs a Client. The peer roster and project mirror are loaded
// from the state dir so a restart starts from the last known state; cached
// peers come back with every online flag false.
func New(cfg config.Client, logger *logger.Logger) (*Client, error) {
	api, err := newDesktopAPI(cfg.ServerURL, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}

	cache := newStateCache(cfg.StateDir)

	return &Client{
		cfg:      cfg,
		logger:   logger,
		api:      api,
		cache:    cache,
		queue:    NewNotificationQueue(),
		clock:    clockwork.NewRealClock(),
		peers:    cache.LoadPeers(),
		projects: cache.LoadProjects(),
	}, nil
}

// Start launches the background task with a fresh command/event channel
// pair. Calling Start on a running client restarts it.
func (c *Client) Start() {
	c.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.commands = make(chan Command, channelCapacity)
	c.events = make(chan Event, channelCapacity)

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.lastPoll = time.Time{}

	c.wg.Add(1)
	go c.run(ctx, c.commands, c.events)
}

// Stop cancels the background task and waits for it to exit. Safe to call
// on a stopped client.
func (c *Client) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

// Reconnect tears down the background task and restarts it against a new
// server URL with fresh channels. The peer roster, project mirror, and
// output directory survive the restart; notification transition state does
// not, so the new server's history is not announced.
func (c *Client) Reconnect(serverURL string) error {
	api, err := newDesktopAPI(serverURL, c.cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("reconnect: %w", err)
	}

	c.Stop()

	c.mu.Lock()
	c.api = api
	c.cfg.ServerURL = serverURL
	c.observer.reset()
	c.mu.Unlock()

	c.Start()
	return nil
}

// Enqueue hands a command to the background task without blocking. Returns
// false if the client is not running or the command channel is full.
func (c *Client) Enqueue(cmd Command) bool {
	c.mu.Lock()
	commands := c.commands
	running := c.cancel != nil
	c.mu.Unlock()

	if !running {
		return false
	}

	select {
	case commands <- cmd:
		return true
	default:
		c.logger.Warn().Msg("command channel full, rejecting command")
		return false
	}
}

// Events returns the event channel of the current run. It is closed when
// the background task exits; Reconnect replaces it.
func (c *Client) Events() <-chan Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events
}

// Notifications returns the queue of pending user-facing notifications.
// The queue is shared across reconnects.
func (c *Client) Notifications() *NotificationQueue {
	return c.queue
}

// emit delivers an event to the current run's channel. A lagging consumer
// backpressures the poll loop rather than losing events; cancellation
// abandons the delivery.
func (c *Client) emit(ctx context.Context, events chan Event, e Event) {
	select {
	case events <- e:
	case <-ctx.Done():
	}
}
