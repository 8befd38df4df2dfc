package domain

import "context"

// ZoneReader reads the full record set of an authoritative zone.
type ZoneReader interface {
	// ListRecords returns the complete record set for the zone as a
	// single ordered sequence, following pagination as needed.
	ListRecords(ctx context.Context, zoneID string) ([]Record, error)
}

// ZoneMutator applies record deletions to an authoritative zone.
type ZoneMutator interface {
	// DeleteRecords submits one atomic batch of record deletions and
	// returns the store's change identifier for propagation tracking.
	DeleteRecords(ctx context.Context, zoneID string, records []Record, comment string) (changeID string, err error)

	// WaitForChange blocks until the given change has propagated or the
	// context expires. Propagation confirmation is advisory; callers
	// treat a wait failure as non-fatal.
	WaitForChange(ctx context.Context, changeID string) error
}

// DistributionLister enumerates the CDN distributions visible to one
// account context.
type DistributionLister interface {
	// ListDistributions returns every distribution the account owns.
	ListDistributions(ctx context.Context) ([]Endpoint, error)
}

// Account describes a bootstrap-managed member account.
type Account struct {
	ID     string
	Name   string
	Email  string
	Status string
}

// OrganizationalUnit describes a placement target for member accounts.
type OrganizationalUnit struct {
	ID   string
	Name string
}

// AccountAPI is the account/identity bootstrap surface. These are thin,
// sequential, idempotent calls with no reconciliation logic.
type AccountAPI interface {
	CreateAccount(ctx context.Context, name, email string) (requestID string, err error)
	ListAccounts(ctx context.Context) ([]Account, error)
	ListOrganizationalUnits(ctx context.Context) ([]OrganizationalUnit, error)
	MoveAccount(ctx context.Context, accountID, destinationOU string) error
}
