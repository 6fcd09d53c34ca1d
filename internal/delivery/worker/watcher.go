// Package worker hosts the background order watcher that keeps the local
// order collection live.
package worker

import (
	"context"
	"log/slog"
	"sync"

	"pristol/config"
	"pristol/internal/delivery"
	"pristol/internal/usecase"

	"go.uber.org/fx"
)

// orderWatcher subscribes to the remote order collection and keeps the
// subscription alive for the lifetime of the process.
type orderWatcher struct {
	cfg    *config.Config
	logger *slog.Logger
	sync   usecase.SyncUsecase

	mu   sync.Mutex
	stop func()
}

// WatcherParams holds dependencies for the order watcher
type WatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Sync   usecase.SyncUsecase
}

// NewOrderWatcher creates the order watcher delivery
func NewOrderWatcher(params WatcherParams) (delivery.Delivery, error) {
	w := &orderWatcher{
		cfg:    params.Cfg,
		logger: params.Logger,
		sync:   params.Sync,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			w.mu.Lock()
			defer w.mu.Unlock()
			if w.stop != nil {
				w.stop()
				w.stop = nil
			}

			return nil
		},
	})

	return w, nil
}

// Serve starts the live order subscription and blocks until the context
// is cancelled. When the watcher is disabled it returns immediately.
func (w *orderWatcher) Serve(ctx context.Context) error {
	if w.cfg.Watcher == nil || !w.cfg.Watcher.Enabled {
		w.logger.Info("Order watcher disabled")

		return nil
	}

	stop, err := w.sync.WatchOrders(ctx)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.stop = stop
	w.mu.Unlock()

	w.logger.Info("Order watcher started")
	<-ctx.Done()

	return nil
}
