package domain

// RecordType represents a DNS record type.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeNS    RecordType = "NS"
	RecordTypeSOA   RecordType = "SOA"
)

// Record represents a single record set in the authoritative zone.
// Identity is (Name, Type).
type Record struct {
	// Name is the fully-qualified record name as returned by the store
	// (e.g. "api.example.org." — Route53 names keep the trailing dot).
	Name string `json:"name"`

	// Type is the DNS record type (A, AAAA, CNAME, etc.).
	Type RecordType `json:"type"`

	// AliasTarget is the target domain when this record is an alias
	// (A/AAAA pointing at a named target rather than literal values).
	// Empty for conventional records.
	AliasTarget string `json:"alias_target,omitempty"`

	// AliasHostedZoneID is the hosted zone of the alias target exactly
	// as listed by the store. Deletes must round-trip this value: an
	// in-zone alias carries the zone's own ID, not the CDN's.
	AliasHostedZoneID string `json:"alias_hosted_zone_id,omitempty"`

	// EvaluateTargetHealth mirrors the listed alias health-check
	// setting, also required for an exact delete round-trip.
	EvaluateTargetHealth bool `json:"evaluate_target_health,omitempty"`

	// Values holds the literal record values for conventional records,
	// in the order returned by the store. Empty for alias records.
	Values []string `json:"values,omitempty"`

	// TTL is the time-to-live in seconds. Zero for alias records,
	// which inherit the target's TTL.
	TTL int64 `json:"ttl,omitempty"`
}

// IsAlias reports whether the record is an alias to a named target.
func (r Record) IsAlias() bool {
	return r.AliasTarget != ""
}

// Key returns the record's identity as a single comparable string.
func (r Record) Key() string {
	return Normalize(r.Name) + "/" + string(r.Type)
}
