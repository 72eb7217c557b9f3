package session

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// KeepAlive periodically asks the manager for its token so an idle console
// renews its access token before it expires instead of on the next click.
type KeepAlive struct {
	Manager  *Manager
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewKeepAlive creates a keep-alive worker with the given interval.
// If interval is 0 or negative, defaults to 1 minute.
func NewKeepAlive(m *Manager, logger *slog.Logger, interval time.Duration) *KeepAlive {
	if interval <= 0 {
		interval = time.Minute
	}

	return &KeepAlive{
		Manager:  m,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. It is non-blocking; call Stop to
// shut it down.
func (k *KeepAlive) Start() {
	go k.run()
	k.Logger.Info("session keep-alive started", "interval", k.Interval)
}

// Stop shuts the worker down and waits for any in-progress tick.
func (k *KeepAlive) Stop() {
	close(k.stopCh)
	<-k.doneCh
	k.Logger.Info("session keep-alive stopped")
}

func (k *KeepAlive) run() {
	defer close(k.doneCh)

	ticker := time.NewTicker(k.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			k.tick()
		case <-k.stopCh:
			return
		}
	}
}

// tick renews the token if it is close to expiry. Unauthenticated sessions
// are left alone.
func (k *KeepAlive) tick() {
	if snap := k.Manager.Snapshot(); snap.State != Authenticated {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), k.Interval)
	defer cancel()

	if _, err := k.Manager.Token(ctx); err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			k.Logger.Info("session ended during keep-alive")
			return
		}
		k.Logger.Warn("keep-alive renewal failed", "error", err)
	}
}
