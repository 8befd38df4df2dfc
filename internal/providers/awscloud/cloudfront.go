package awscloud

import (
	"context"
	"fmt"

	"mwhitfielddev/zonekeeper/internal/zone/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
)

// Compile-time check that CloudFrontLister satisfies DistributionLister.
var _ domain.DistributionLister = (*CloudFrontLister)(nil)

// CloudFrontLister implements DistributionLister for one account
// context. Listing is read-only; one lister is built per member
// account profile.
type CloudFrontLister struct {
	client  *cloudfront.Client
	account string
}

// NewCloudFrontLister returns a lister for the given account config.
func NewCloudFrontLister(cfg aws.Config, account string) *CloudFrontLister {
	return &CloudFrontLister{
		client:  cloudfront.NewFromConfig(cfg),
		account: account,
	}
}

// ListDistributions returns every distribution in the account with its
// canonical CDN hostname and configured custom aliases.
func (l *CloudFrontLister) ListDistributions(ctx context.Context) ([]domain.Endpoint, error) {
	var endpoints []domain.Endpoint

	paginator := cloudfront.NewListDistributionsPaginator(l.client, &cloudfront.ListDistributionsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list distributions: %w", mapError(err))
		}
		if page.DistributionList == nil {
			continue
		}

		for _, d := range page.DistributionList.Items {
			e := domain.Endpoint{
				CDNDomain:     aws.ToString(d.DomainName),
				SourceAccount: l.account,
			}
			if d.Aliases != nil {
				e.Aliases = append(e.Aliases, d.Aliases.Items...)
			}
			endpoints = append(endpoints, e)
		}
	}

	return endpoints, nil
}
