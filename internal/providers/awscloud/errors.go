package awscloud

import (
	"errors"
	"fmt"

	"mwhitfielddev/zonekeeper/internal/zone/domain"

	"github.com/aws/smithy-go"
)

// mapError wraps AWS API errors with the matching domain sentinel so
// callers can classify failures without importing the SDK.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.ErrorCode() {
	case "AccessDenied", "AccessDeniedException", "UnauthorizedOperation",
		"InvalidClientTokenId", "ExpiredToken", "ExpiredTokenException":
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, apiErr.ErrorMessage())
	case "Throttling", "ThrottlingException", "TooManyRequestsException", "PriorRequestNotComplete":
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, apiErr.ErrorMessage())
	case "NoSuchHostedZone", "NoSuchChange", "NoSuchDistribution",
		"AccountNotFoundException", "ChildNotFoundException":
		return fmt.Errorf("%w: %s", domain.ErrNotFound, apiErr.ErrorMessage())
	}

	return err
}
