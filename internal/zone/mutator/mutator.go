// Package mutator turns DELETE dispositions into bounded, sequential
// change batches against the authoritative zone. Each batch is
// submitted atomically; a submission failure aborts the remaining
// batches, while a propagation-wait failure is advisory and logged.
package mutator

import (
	"context"
	"fmt"
	"io"
	"time"

	"mwhitfielddev/zonekeeper/internal/retry"
	"mwhitfielddev/zonekeeper/internal/zone/domain"
)

// DefaultWaitTimeout bounds the propagation wait for one change batch.
const DefaultWaitTimeout = 5 * time.Minute

// Batch is one atomic change request against the zone.
type Batch struct {
	// Records are the record sets deleted by this batch, in
	// classifier order.
	Records []domain.Record

	// Comment annotates the change in the store's change history.
	Comment string
}

// Plan partitions the DELETE-verdict dispositions into ordered batches
// of at most batchSize records each. Submission order equals input
// order.
func Plan(deletes []domain.Disposition, batchSize int) []Batch {
	if batchSize <= 0 {
		batchSize = 1
	}

	var batches []Batch
	for start := 0; start < len(deletes); start += batchSize {
		end := min(start+batchSize, len(deletes))

		b := Batch{
			Records: make([]domain.Record, 0, end-start),
		}
		for _, d := range deletes[start:end] {
			b.Records = append(b.Records, d.Record)
		}
		b.Comment = fmt.Sprintf("zonekeeper cleanup: delete %d orphaned records (batch %d)",
			len(b.Records), len(batches)+1)
		batches = append(batches, b)
	}
	return batches
}

// Mutator applies planned batches through a ZoneMutator.
type Mutator struct {
	store       domain.ZoneMutator
	waitTimeout time.Duration
	log         io.Writer
}

// Option configures a Mutator.
type Option func(*Mutator)

// WithWaitTimeout overrides the per-batch propagation wait timeout.
func WithWaitTimeout(d time.Duration) Option {
	return func(m *Mutator) {
		m.waitTimeout = d
	}
}

// WithLog directs progress and warning output to w.
func WithLog(w io.Writer) Option {
	return func(m *Mutator) {
		m.log = w
	}
}

// New returns a Mutator over the given store.
func New(store domain.ZoneMutator, opts ...Option) *Mutator {
	m := &Mutator{
		store:       store,
		waitTimeout: DefaultWaitTimeout,
		log:         io.Discard,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Apply submits the batches in order. Batch N+1 is not submitted until
// batch N's submission has completed. On a submission failure the
// remaining batches are abandoned and the error is returned;
// already-submitted batches stay applied. A propagation-wait failure
// is logged and the run proceeds.
func (m *Mutator) Apply(ctx context.Context, zoneID string, batches []Batch) error {
	for i, b := range batches {
		fmt.Fprintf(m.log, "Submitting batch %d/%d (%d records)...\n", i+1, len(batches), len(b.Records))

		changeID, err := m.store.DeleteRecords(ctx, zoneID, b.Records, b.Comment)
		if err != nil {
			return fmt.Errorf("batch %d/%d submission failed: %w", i+1, len(batches), err)
		}

		if err := m.waitForChange(ctx, changeID); err != nil {
			fmt.Fprintf(m.log, "Warning: batch %d/%d propagation not confirmed: %v\n", i+1, len(batches), err)
			continue
		}
		fmt.Fprintf(m.log, "Batch %d/%d propagated.\n", i+1, len(batches))
	}
	return nil
}

// waitForChange polls the store for propagation, retrying transient
// failures with backoff inside the overall wait timeout.
func (m *Mutator) waitForChange(ctx context.Context, changeID string) error {
	wctx, cancel := context.WithTimeout(ctx, m.waitTimeout)
	defer cancel()

	return retry.Do(wctx, retry.DefaultConfig(), nil, func() error {
		return m.store.WaitForChange(wctx, changeID)
	})
}
