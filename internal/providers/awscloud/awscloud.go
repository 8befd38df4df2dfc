// Package awscloud implements the zone domain interfaces against AWS:
// Route53 for the authoritative zone, CloudFront for distribution
// listing, and Organizations for the account bootstrap surface.
// Credentials come from the shared-config chain (profiles, SSO, or the
// environment); nothing is stored by this tool.
package awscloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// LoadConfig resolves an aws.Config for the given profile and region.
// An empty profile uses the default credential chain.
func LoadConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("awscloud: failed to load credentials for profile %q: %w", profile, err)
	}
	return cfg, nil
}
