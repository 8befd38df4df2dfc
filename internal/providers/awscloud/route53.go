package awscloud

import (
	"context"
	"fmt"
	"time"

	"mwhitfielddev/zonekeeper/internal/zone/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
)

// changeWaitMax bounds a single INSYNC poll through the SDK waiter.
const changeWaitMax = 3 * time.Minute

// cloudFrontHostedZoneID is the fixed Route53 hosted zone all
// CloudFront distributions live in. Used only as a fallback when a
// record predates the listed zone ID being captured.
const cloudFrontHostedZoneID = "Z2FDTNDATAQYW2"

// Compile-time checks that Route53Provider satisfies the zone interfaces.
var (
	_ domain.ZoneReader  = (*Route53Provider)(nil)
	_ domain.ZoneMutator = (*Route53Provider)(nil)
)

// route53API is the slice of the Route53 client the provider uses.
// Narrowing the dependency keeps the provider testable without AWS.
type route53API interface {
	ListResourceRecordSets(ctx context.Context, in *route53.ListResourceRecordSetsInput, opts ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error)
	ChangeResourceRecordSets(ctx context.Context, in *route53.ChangeResourceRecordSetsInput, opts ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error)
	GetChange(ctx context.Context, in *route53.GetChangeInput, opts ...func(*route53.Options)) (*route53.GetChangeOutput, error)
}

// Route53Provider implements ZoneReader and ZoneMutator against the
// Route53 API.
type Route53Provider struct {
	client route53API
}

// NewRoute53Provider returns a provider backed by the given AWS config.
func NewRoute53Provider(cfg aws.Config) *Route53Provider {
	return &Route53Provider{client: route53.NewFromConfig(cfg)}
}

// ListRecords returns the complete record set for the zone, following
// the API's name/type pagination cursor until the listing is no longer
// truncated. A zone that cannot be read at all is fatal to the caller.
func (p *Route53Provider) ListRecords(ctx context.Context, zoneID string) ([]domain.Record, error) {
	var records []domain.Record

	in := &route53.ListResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
	}

	for {
		out, err := p.client.ListResourceRecordSets(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to list records for zone %s: %w",
				domain.ErrZoneUnavailable, zoneID, mapError(err))
		}

		for _, rrs := range out.ResourceRecordSets {
			records = append(records, fromResourceRecordSet(rrs))
		}

		if !out.IsTruncated {
			break
		}
		in.StartRecordName = out.NextRecordName
		in.StartRecordType = out.NextRecordType
	}

	return records, nil
}

// DeleteRecords submits one atomic batch of deletions and returns the
// change ID for propagation tracking.
func (p *Route53Provider) DeleteRecords(ctx context.Context, zoneID string, records []domain.Record, comment string) (string, error) {
	changes := make([]r53types.Change, 0, len(records))
	for _, r := range records {
		rrs, err := toResourceRecordSet(r)
		if err != nil {
			return "", fmt.Errorf("record %s/%s: %w", r.Name, r.Type, err)
		}
		changes = append(changes, r53types.Change{
			Action:            r53types.ChangeActionDelete,
			ResourceRecordSet: rrs,
		})
	}

	out, err := p.client.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch: &r53types.ChangeBatch{
			Changes: changes,
			Comment: aws.String(comment),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to submit change batch for zone %s: %w", zoneID, mapError(err))
	}
	if out.ChangeInfo == nil || out.ChangeInfo.Id == nil {
		return "", fmt.Errorf("change batch for zone %s: store returned no change ID", zoneID)
	}

	return aws.ToString(out.ChangeInfo.Id), nil
}

// WaitForChange polls the change until Route53 reports INSYNC.
func (p *Route53Provider) WaitForChange(ctx context.Context, changeID string) error {
	client, ok := p.client.(*route53.Client)
	if !ok {
		// Test doubles poll GetChange directly.
		return p.pollChange(ctx, changeID)
	}

	waiter := route53.NewResourceRecordSetsChangedWaiter(client)
	if err := waiter.Wait(ctx, &route53.GetChangeInput{Id: aws.String(changeID)}, changeWaitMax); err != nil {
		return fmt.Errorf("change %s not INSYNC: %w", changeID, mapError(err))
	}
	return nil
}

func (p *Route53Provider) pollChange(ctx context.Context, changeID string) error {
	out, err := p.client.GetChange(ctx, &route53.GetChangeInput{Id: aws.String(changeID)})
	if err != nil {
		return fmt.Errorf("change %s: %w", changeID, mapError(err))
	}
	if out.ChangeInfo == nil || out.ChangeInfo.Status != r53types.ChangeStatusInsync {
		return fmt.Errorf("change %s not INSYNC", changeID)
	}
	return nil
}

// fromResourceRecordSet converts an API record set to a domain Record.
func fromResourceRecordSet(rrs r53types.ResourceRecordSet) domain.Record {
	r := domain.Record{
		Name: aws.ToString(rrs.Name),
		Type: domain.RecordType(rrs.Type),
	}
	if rrs.TTL != nil {
		r.TTL = *rrs.TTL
	}
	if rrs.AliasTarget != nil {
		r.AliasTarget = aws.ToString(rrs.AliasTarget.DNSName)
		r.AliasHostedZoneID = aws.ToString(rrs.AliasTarget.HostedZoneId)
		r.EvaluateTargetHealth = rrs.AliasTarget.EvaluateTargetHealth
	}
	for _, rr := range rrs.ResourceRecords {
		r.Values = append(r.Values, aws.ToString(rr.Value))
	}
	return r
}

// toResourceRecordSet rebuilds the API shape for a delete change. The
// record must round-trip exactly as listed or Route53 rejects the
// change, so alias deletes carry the listed hosted zone ID and health
// setting and plain records carry their original TTL and values.
func toResourceRecordSet(r domain.Record) (*r53types.ResourceRecordSet, error) {
	rrs := &r53types.ResourceRecordSet{
		Name: aws.String(r.Name),
		Type: r53types.RRType(r.Type),
	}

	if r.IsAlias() {
		zoneID := r.AliasHostedZoneID
		if zoneID == "" {
			zoneID = cloudFrontHostedZoneID
		}
		rrs.AliasTarget = &r53types.AliasTarget{
			DNSName:              aws.String(r.AliasTarget),
			HostedZoneId:         aws.String(zoneID),
			EvaluateTargetHealth: r.EvaluateTargetHealth,
		}
		return rrs, nil
	}

	if len(r.Values) == 0 {
		return nil, fmt.Errorf("record has neither alias target nor values")
	}
	rrs.TTL = aws.Int64(r.TTL)
	for _, v := range r.Values {
		rrs.ResourceRecords = append(rrs.ResourceRecords, r53types.ResourceRecord{Value: aws.String(v)})
	}
	return rrs, nil
}
