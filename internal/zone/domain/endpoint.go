package domain

// Endpoint represents a live CDN distribution discovered in a member
// account. Endpoints are rebuilt from the provider API on every run and
// never persisted.
type Endpoint struct {
	// CDNDomain is the provider-assigned canonical hostname
	// (e.g. "d111111abcdef8.cloudfront.net").
	CDNDomain string `json:"cdn_domain"`

	// Aliases are the custom hostnames the distribution answers for.
	Aliases []string `json:"aliases,omitempty"`

	// SourceAccount names the account context the endpoint came from.
	SourceAccount string `json:"source_account"`
}

// AccountReport records the outcome of collecting one account context.
type AccountReport struct {
	// Account is the account context name.
	Account string

	// Distributions is the number of distributions retrieved.
	Distributions int

	// Err is non-nil when the account could not be queried. A failed
	// account is excluded from the live sets but never aborts the run.
	Err error
}

// LiveSet aggregates endpoint data across all reachable accounts.
type LiveSet struct {
	// CDNDomains is the set of canonical CDN hostnames currently live,
	// keyed by normalized domain.
	CDNDomains map[string]struct{}

	// ConfiguredAliases is the set of custom hostnames configured on
	// live distributions, keyed by normalized domain.
	ConfiguredAliases map[string]struct{}

	// Reports holds one entry per account context, reachable or not.
	Reports []AccountReport
}

// NewLiveSet returns an empty LiveSet with initialised sets.
func NewLiveSet() *LiveSet {
	return &LiveSet{
		CDNDomains:        make(map[string]struct{}),
		ConfiguredAliases: make(map[string]struct{}),
	}
}

// Add merges one endpoint into the aggregate sets.
func (s *LiveSet) Add(e Endpoint) {
	if d := Normalize(e.CDNDomain); d != "" {
		s.CDNDomains[d] = struct{}{}
	}
	for _, a := range e.Aliases {
		if n := Normalize(a); n != "" {
			s.ConfiguredAliases[n] = struct{}{}
		}
	}
}

// HasCDNDomain reports whether the normalized domain is a live canonical
// CDN hostname.
func (s *LiveSet) HasCDNDomain(d string) bool {
	_, ok := s.CDNDomains[Normalize(d)]
	return ok
}

// HasAlias reports whether the normalized name is configured on any live
// distribution.
func (s *LiveSet) HasAlias(name string) bool {
	_, ok := s.ConfiguredAliases[Normalize(name)]
	return ok
}

// Failed returns the reports for accounts that could not be queried.
func (s *LiveSet) Failed() []AccountReport {
	var failed []AccountReport
	for _, r := range s.Reports {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
