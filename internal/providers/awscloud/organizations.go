package awscloud

import (
	"context"
	"fmt"

	"mwhitfielddev/zonekeeper/internal/zone/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
)

// Compile-time check that OrganizationsProvider satisfies AccountAPI.
var _ domain.AccountAPI = (*OrganizationsProvider)(nil)

// OrganizationsProvider implements the account bootstrap surface. These
// calls are thin and idempotent; all reconciliation logic lives in the
// zone packages.
type OrganizationsProvider struct {
	client *organizations.Client
}

// NewOrganizationsProvider returns a provider backed by the management
// account config.
func NewOrganizationsProvider(cfg aws.Config) *OrganizationsProvider {
	return &OrganizationsProvider{client: organizations.NewFromConfig(cfg)}
}

// CreateAccount requests creation of a member account and returns the
// asynchronous request ID. Account creation completes out of band.
func (p *OrganizationsProvider) CreateAccount(ctx context.Context, name, email string) (string, error) {
	out, err := p.client.CreateAccount(ctx, &organizations.CreateAccountInput{
		AccountName: aws.String(name),
		Email:       aws.String(email),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create account %q: %w", name, mapError(err))
	}
	if out.CreateAccountStatus == nil || out.CreateAccountStatus.Id == nil {
		return "", fmt.Errorf("create account %q: no request ID returned", name)
	}
	return aws.ToString(out.CreateAccountStatus.Id), nil
}

// ListAccounts returns all member accounts in the organization.
func (p *OrganizationsProvider) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account

	paginator := organizations.NewListAccountsPaginator(p.client, &organizations.ListAccountsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", mapError(err))
		}
		for _, a := range page.Accounts {
			accounts = append(accounts, domain.Account{
				ID:     aws.ToString(a.Id),
				Name:   aws.ToString(a.Name),
				Email:  aws.ToString(a.Email),
				Status: string(a.Status),
			})
		}
	}

	return accounts, nil
}

// ListOrganizationalUnits returns the OUs directly under the
// organization root.
func (p *OrganizationsProvider) ListOrganizationalUnits(ctx context.Context) ([]domain.OrganizationalUnit, error) {
	roots, err := p.client.ListRoots(ctx, &organizations.ListRootsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list organization roots: %w", mapError(err))
	}
	if len(roots.Roots) == 0 {
		return nil, fmt.Errorf("organization has no root: %w", domain.ErrNotFound)
	}
	rootID := aws.ToString(roots.Roots[0].Id)

	var units []domain.OrganizationalUnit
	paginator := organizations.NewListOrganizationalUnitsForParentPaginator(p.client,
		&organizations.ListOrganizationalUnitsForParentInput{ParentId: aws.String(rootID)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list organizational units: %w", mapError(err))
		}
		for _, ou := range page.OrganizationalUnits {
			units = append(units, domain.OrganizationalUnit{
				ID:   aws.ToString(ou.Id),
				Name: aws.ToString(ou.Name),
			})
		}
	}

	return units, nil
}

// MoveAccount moves a member account from the organization root into
// the destination OU.
func (p *OrganizationsProvider) MoveAccount(ctx context.Context, accountID, destinationOU string) error {
	roots, err := p.client.ListRoots(ctx, &organizations.ListRootsInput{})
	if err != nil {
		return fmt.Errorf("failed to list organization roots: %w", mapError(err))
	}
	if len(roots.Roots) == 0 {
		return fmt.Errorf("organization has no root: %w", domain.ErrNotFound)
	}

	_, err = p.client.MoveAccount(ctx, &organizations.MoveAccountInput{
		AccountId:           aws.String(accountID),
		SourceParentId:      roots.Roots[0].Id,
		DestinationParentId: aws.String(destinationOU),
	})
	if err != nil {
		return fmt.Errorf("failed to move account %s: %w", accountID, mapError(err))
	}
	return nil
}
