package awscloud

import (
	"errors"
	"fmt"
	"testing"

	"mwhitfielddev/zonekeeper/internal/zone/domain"

	"github.com/aws/smithy-go"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{name: "access denied", code: "AccessDenied", want: domain.ErrUnauthorized},
		{name: "expired token", code: "ExpiredTokenException", want: domain.ErrUnauthorized},
		{name: "throttling", code: "Throttling", want: domain.ErrRateLimited},
		{name: "prior request pending", code: "PriorRequestNotComplete", want: domain.ErrRateLimited},
		{name: "missing zone", code: "NoSuchHostedZone", want: domain.ErrNotFound},
		{name: "missing account", code: "AccountNotFoundException", want: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := &smithy.GenericAPIError{Code: tt.code, Message: "boom"}
			got := mapError(fmt.Errorf("wrapped: %w", apiErr))
			if !errors.Is(got, tt.want) {
				t.Errorf("mapError(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMapErrorPassthrough(t *testing.T) {
	if got := mapError(nil); got != nil {
		t.Errorf("mapError(nil) = %v", got)
	}

	plain := errors.New("dial tcp: connection refused")
	if got := mapError(plain); !errors.Is(got, plain) {
		t.Errorf("mapError passed through = %v", got)
	}

	unknown := &smithy.GenericAPIError{Code: "SomethingElse", Message: "boom"}
	if got := mapError(unknown); !errors.Is(got, unknown) {
		t.Errorf("unknown code should pass through, got %v", got)
	}
}
