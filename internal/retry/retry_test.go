package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mwhitfielddev/zonekeeper/internal/zone/domain"
)

func fastConfig(attempts int) Config {
	return Config{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestDoSucceedsAfterRetry(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), nil, func() error {
		calls++
		if calls < 3 {
			return domain.ErrRateLimited
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	calls := 0
	authErr := fmt.Errorf("list failed: %w", domain.ErrUnauthorized)
	err := Do(context.Background(), fastConfig(3), nil, func() error {
		calls++
		return authErr
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("Do error = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), nil, func() error {
		calls++
		return domain.ErrRateLimited
	})
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("Do error = %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestDoHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, fastConfig(3), nil, func() error {
		calls++
		return domain.ErrRateLimited
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Do error = %v, want context.Canceled", err)
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestDoCustomPredicate(t *testing.T) {
	calls := 0
	sentinel := errors.New("flaky")
	err := Do(context.Background(), fastConfig(2), func(err error) bool {
		return errors.Is(err, sentinel)
	}, func() error {
		calls++
		if calls == 1 {
			return sentinel
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "cancellation", err: context.Canceled, want: false},
		{name: "unauthorized", err: fmt.Errorf("x: %w", domain.ErrUnauthorized), want: false},
		{name: "rate limited", err: fmt.Errorf("x: %w", domain.ErrRateLimited), want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
