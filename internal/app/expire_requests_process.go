package app

import (
	"context"
	"strconv"
	"time"

	"github.com/instapay/transaction-service/internal/config"
)

type ExpireRequestsHandler interface {
	Execute(ctx context.Context) error
}

type ExpireRequestsProcess struct {
	handler ExpireRequestsHandler
	config  config.Process
}

func NewExpireRequestsProcess(h ExpireRequestsHandler, cfg config.Process) *ExpireRequestsProcess {
	return &ExpireRequestsProcess{handler: h, config: cfg}
}

// Run runs the stale request expiry process until ctx is cancelled.
func (p *ExpireRequestsProcess) Run(ctx context.Context) error {
	interval, err := strconv.Atoi(p.config.Interval)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(time.Duration(interval) * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.handler.Execute(ctx)
		}
	}
}
