// Package collector gathers the live CDN endpoint picture across every
// member account. Accounts are queried concurrently and independently;
// a single unreachable account is reported but never aborts the run.
package collector

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"mwhitfielddev/zonekeeper/internal/zone/domain"

	"golang.org/x/sync/errgroup"
)

// DefaultAccountTimeout bounds how long one account query may take.
const DefaultAccountTimeout = 60 * time.Second

// Collector aggregates distribution data from a set of account contexts.
type Collector struct {
	listers map[string]domain.DistributionLister
	timeout time.Duration
}

// Option configures a Collector.
type Option func(*Collector)

// WithAccountTimeout overrides the per-account query timeout.
func WithAccountTimeout(d time.Duration) Option {
	return func(c *Collector) {
		c.timeout = d
	}
}

// New returns a Collector over the given account contexts. The map key
// is the account context name used in reports.
func New(listers map[string]domain.DistributionLister, opts ...Option) *Collector {
	c := &Collector{
		listers: listers,
		timeout: DefaultAccountTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect queries all accounts in parallel and merges the results into
// a single LiveSet. Per-account failures are recorded in the report
// list; the returned error is non-nil only when the parent context is
// cancelled.
func (c *Collector) Collect(ctx context.Context) (*domain.LiveSet, error) {
	live := domain.NewLiveSet()

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for name, lister := range c.listers {
		g.Go(func() error {
			actx, cancel := context.WithTimeout(gctx, c.timeout)
			defer cancel()

			endpoints, err := lister.ListDistributions(actx)

			mu.Lock()
			defer mu.Unlock()

			report := domain.AccountReport{Account: name}
			if err != nil {
				// Record and continue: a dark account must not
				// take down the whole collection.
				report.Err = fmt.Errorf("account %s: %w", name, err)
				live.Reports = append(live.Reports, report)
				return nil
			}

			report.Distributions = len(endpoints)
			for _, e := range endpoints {
				e.SourceAccount = name
				live.Add(e)
			}
			live.Reports = append(live.Reports, report)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(live.Reports, func(i, j int) bool {
		return live.Reports[i].Account < live.Reports[j].Account
	})
	return live, nil
}
