package service

import (
	"context"
	"sync"
	"time"

	"github.com/AnTengye/aiwriter/web/config"
	"github.com/AnTengye/aiwriter/web/model"
	"github.com/AnTengye/aiwriter/web/pkg/logger"
)

// FetchFunc loads one snapshot of an article
type FetchFunc func(ctx context.Context, id string) (*model.Article, error)

// Poller repeatedly fetches an article until it reaches a terminal status.
// Fetches run one at a time on the caller's goroutine.
type Poller struct {
	fetch      FetchFunc
	interval   time.Duration
	maxBackoff time.Duration

	mu       sync.RWMutex
	snapshot *model.Article
}

func NewPoller(fetch FetchFunc, cfg *config.PollConfig) *Poller {
	interval := cfg.Interval.Std()
	if interval <= 0 {
		interval = config.DefaultPollInterval
	}
	return &Poller{
		fetch:      fetch,
		interval:   interval,
		maxBackoff: cfg.MaxBackoff.Std(),
	}
}

// Run fetches immediately, then after each delay, passing every successful
// snapshot to onUpdate. It returns the terminal snapshot with a nil error, or
// the latest snapshot with ctx.Err() once ctx is done. No fetch is started
// after cancellation and results arriving after it are discarded.
func (p *Poller) Run(ctx context.Context, id string, onUpdate func(*model.Article)) (*model.Article, error) {
	ctx = logger.WithArticleID(ctx, id)

	timer := time.NewTimer(0)
	defer timer.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return p.Snapshot(), ctx.Err()
		case <-timer.C:
		}
		if err := ctx.Err(); err != nil {
			return p.Snapshot(), err
		}

		article, err := p.fetch(ctx, id)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return p.Snapshot(), ctxErr
		}

		if err != nil {
			failures++
			logger.Warn(ctx, "status poll failed", "error", err, "failures", failures)
		} else {
			failures = 0
			p.mu.Lock()
			p.snapshot = article
			p.mu.Unlock()

			if onUpdate != nil {
				onUpdate(article)
			}
			if article.Status.IsTerminal() {
				logger.Info(ctx, "polling finished", "status", article.Status)
				return article, nil
			}
		}

		timer.Reset(p.delay(failures))
	}
}

// Snapshot returns the latest successful fetch, or nil before the first one
func (p *Poller) Snapshot() *model.Article {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

// delay doubles the interval per consecutive failure, capped at maxBackoff
func (p *Poller) delay(failures int) time.Duration {
	d := p.interval
	if failures == 0 || p.maxBackoff <= d {
		return d
	}
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= p.maxBackoff {
			return p.maxBackoff
		}
	}
	return d
}
