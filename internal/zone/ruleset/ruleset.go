// Package ruleset loads the declarative cleanup policy: which record
// names are protected infrastructure, which hostname patterns identify
// orphaned validation records, and what a CDN-canonical domain looks
// like. Keeping the policy in a file lets the classifier be tested
// against synthetic zones without touching the real domain.
package ruleset

import (
	"fmt"
	"os"
	"path"
	"strings"

	"mwhitfielddev/zonekeeper/internal/zone/domain"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCDNSuffix identifies CloudFront canonical hostnames.
	DefaultCDNSuffix = "cloudfront.net"

	// DefaultMaxAliasHops bounds same-zone alias chain resolution.
	DefaultMaxAliasHops = 6

	// DefaultBatchSize is the Route53 hard ceiling on changes per
	// ChangeResourceRecordSets request.
	DefaultBatchSize = 500
)

// Ruleset is the cleanup policy for one zone.
type Ruleset struct {
	// ZoneName is the apex domain the policy applies to (e.g. "example.org").
	ZoneName string `yaml:"zone_name"`

	// CDNSuffix is the domain suffix of CDN-canonical hostnames.
	CDNSuffix string `yaml:"cdn_suffix"`

	// Protected lists record names that are never deleted regardless
	// of live-set contents (apex, shared infrastructure, etc.).
	Protected []string `yaml:"protected"`

	// OrphanPatterns lists hostname patterns (exact or path.Match
	// globs) of environments known to be retired. Validation CNAMEs
	// whose parent domain matches one of these are deleted.
	OrphanPatterns []string `yaml:"orphan_patterns"`

	// MaxAliasHops caps alias chain resolution.
	MaxAliasHops int `yaml:"max_alias_hops"`

	// BatchSize caps record deletions per change request.
	BatchSize int `yaml:"batch_size"`
}

// Load reads a ruleset from the given YAML file, applies defaults, and
// validates it.
func Load(filePath string) (*Ruleset, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("ruleset: failed to read %s: %w", filePath, err)
	}

	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("ruleset: failed to parse %s: %w", filePath, err)
	}

	rs.ApplyDefaults()
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("ruleset: %s: %w", filePath, err)
	}
	return &rs, nil
}

// ApplyDefaults fills in zero-valued fields.
func (rs *Ruleset) ApplyDefaults() {
	if rs.CDNSuffix == "" {
		rs.CDNSuffix = DefaultCDNSuffix
	}
	if rs.MaxAliasHops <= 0 {
		rs.MaxAliasHops = DefaultMaxAliasHops
	}
	if rs.BatchSize <= 0 {
		rs.BatchSize = DefaultBatchSize
	}
}

// Validate checks the ruleset for values that would make a run unsafe.
func (rs *Ruleset) Validate() error {
	if rs.ZoneName == "" {
		return fmt.Errorf("zone_name is required")
	}
	if rs.BatchSize > DefaultBatchSize {
		return fmt.Errorf("batch_size %d exceeds the store limit of %d", rs.BatchSize, DefaultBatchSize)
	}
	for _, p := range rs.OrphanPatterns {
		if _, err := path.Match(p, "probe"); err != nil {
			return fmt.Errorf("invalid orphan pattern %q: %w", p, err)
		}
	}
	return nil
}

// IsProtected reports whether the record name is on the protected
// infrastructure allow-list. Comparison is on normalized names.
func (rs *Ruleset) IsProtected(name string) bool {
	n := domain.Normalize(name)
	for _, p := range rs.Protected {
		if domain.Normalize(p) == n {
			return true
		}
	}
	return false
}

// MatchesOrphanPattern reports whether the hostname matches one of the
// known-orphaned patterns, either exactly or as a glob.
func (rs *Ruleset) MatchesOrphanPattern(hostname string) bool {
	n := domain.Normalize(hostname)
	for _, p := range rs.OrphanPatterns {
		pat := domain.Normalize(p)
		if pat == n {
			return true
		}
		if ok, err := path.Match(pat, n); err == nil && ok {
			return true
		}
	}
	return false
}

// IsCDNDomain reports whether the target looks like a CDN-canonical
// hostname rather than an in-zone or external vanity name.
func (rs *Ruleset) IsCDNDomain(target string) bool {
	n := domain.Normalize(target)
	return n == rs.CDNSuffix || strings.HasSuffix(n, "."+rs.CDNSuffix)
}
