package classifier

import (
	"testing"

	"mwhitfielddev/zonekeeper/internal/zone/domain"
	"mwhitfielddev/zonekeeper/internal/zone/ruleset"

	"github.com/google/go-cmp/cmp"
)

func testRuleset() *ruleset.Ruleset {
	rs := &ruleset.Ruleset{
		ZoneName:       "example.org",
		Protected:      []string{"example.org", "www.example.org"},
		OrphanPatterns: []string{"old-app.example.org", "pr-*.example.org"},
	}
	rs.ApplyDefaults()
	return rs
}

func liveSetWith(cdnDomains, aliases []string) *domain.LiveSet {
	live := domain.NewLiveSet()
	for _, d := range cdnDomains {
		live.CDNDomains[d] = struct{}{}
	}
	for _, a := range aliases {
		live.ConfiguredAliases[a] = struct{}{}
	}
	return live
}

func TestClassifyAliasRecords(t *testing.T) {
	live := liveSetWith(
		[]string{"d111live.cloudfront.net"},
		[]string{"app.example.org"},
	)
	rs := testRuleset()

	tests := []struct {
		name        string
		record      domain.Record
		wantVerdict domain.Verdict
		wantReason  string
	}{
		{
			name: "alias to live distribution",
			record: domain.Record{
				Name:        "cdn.example.org.",
				Type:        domain.RecordTypeA,
				AliasTarget: "d111live.cloudfront.net.",
			},
			wantVerdict: domain.VerdictKeep,
			wantReason:  "live CDN alias",
		},
		{
			name: "alias to dead distribution",
			record: domain.Record{
				Name:        "old.example.org.",
				Type:        domain.RecordTypeA,
				AliasTarget: "d222dead.cloudfront.net.",
			},
			wantVerdict: domain.VerdictDelete,
			wantReason:  "dead CDN: d222dead.cloudfront.net",
		},
		{
			name: "protected apex with dead target",
			record: domain.Record{
				Name:        "example.org.",
				Type:        domain.RecordTypeA,
				AliasTarget: "d222dead.cloudfront.net.",
			},
			wantVerdict: domain.VerdictKeep,
			wantReason:  "infrastructure",
		},
		{
			name: "configured alias wins over dead target",
			record: domain.Record{
				Name:        "app.example.org.",
				Type:        domain.RecordTypeA,
				AliasTarget: "d222dead.cloudfront.net.",
			},
			wantVerdict: domain.VerdictKeep,
			wantReason:  "live CDN alias",
		},
		{
			name: "AAAA alias to dead distribution",
			record: domain.Record{
				Name:        "old.example.org.",
				Type:        domain.RecordTypeAAAA,
				AliasTarget: "d222dead.cloudfront.net.",
			},
			wantVerdict: domain.VerdictDelete,
			wantReason:  "dead CDN: d222dead.cloudfront.net",
		},
		{
			name: "alias to unknown external target",
			record: domain.Record{
				Name:        "lb.example.org.",
				Type:        domain.RecordTypeA,
				AliasTarget: "my-alb-1234.us-east-1.elb.amazonaws.com.",
			},
			wantVerdict: domain.VerdictKeep,
			wantReason:  "unknown target: my-alb-1234.us-east-1.elb.amazonaws.com",
		},
		{
			name: "non-alias A record",
			record: domain.Record{
				Name:   "mail.example.org.",
				Type:   domain.RecordTypeA,
				Values: []string{"203.0.113.7"},
			},
			wantVerdict: domain.VerdictSkip,
			wantReason:  "non-alias",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]domain.Record{tt.record}, live, rs)
			if len(got) != 1 {
				t.Fatalf("expected 1 disposition, got %d", len(got))
			}
			if got[0].Verdict != tt.wantVerdict {
				t.Errorf("verdict = %s, want %s (reason %q)", got[0].Verdict, tt.wantVerdict, got[0].Reason)
			}
			if got[0].Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", got[0].Reason, tt.wantReason)
			}
		})
	}
}

func TestClassifySkippedTypes(t *testing.T) {
	live := domain.NewLiveSet()
	rs := testRuleset()

	tests := []struct {
		name       string
		record     domain.Record
		wantReason string
	}{
		{
			name:       "NS is essential",
			record:     domain.Record{Name: "example.org.", Type: domain.RecordTypeNS, Values: []string{"ns-1.awsdns.org."}},
			wantReason: "essential",
		},
		{
			name:       "SOA is essential",
			record:     domain.Record{Name: "example.org.", Type: domain.RecordTypeSOA, Values: []string{"ns-1.awsdns.org. hostmaster."}},
			wantReason: "essential",
		},
		{
			name:       "MX is never touched",
			record:     domain.Record{Name: "example.org.", Type: domain.RecordTypeMX, Values: []string{"10 mail.example.org."}},
			wantReason: "email/verification",
		},
		{
			name:       "TXT is never touched",
			record:     domain.Record{Name: "example.org.", Type: domain.RecordTypeTXT, Values: []string{`"v=spf1 -all"`}},
			wantReason: "email/verification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]domain.Record{tt.record}, live, rs)
			if got[0].Verdict != domain.VerdictSkip {
				t.Errorf("verdict = %s, want SKIP", got[0].Verdict)
			}
			if got[0].Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", got[0].Reason, tt.wantReason)
			}
		})
	}
}

func TestClassifyValidationCNAMEs(t *testing.T) {
	live := domain.NewLiveSet()
	rs := testRuleset()

	tests := []struct {
		name        string
		record      domain.Record
		wantVerdict domain.Verdict
		wantReason  string
	}{
		{
			name: "validation record for retired environment",
			record: domain.Record{
				Name:   `_abc123def.old-app.example.org.`,
				Type:   domain.RecordTypeCNAME,
				Values: []string{"_xyz.acm-validations.aws."},
			},
			wantVerdict: domain.VerdictDelete,
			wantReason:  "orphaned validation record for old-app.example.org",
		},
		{
			name: "validation record matching glob pattern",
			record: domain.Record{
				Name:   `_9f8e7d.pr-142.example.org.`,
				Type:   domain.RecordTypeCNAME,
				Values: []string{"_xyz.acm-validations.aws."},
			},
			wantVerdict: domain.VerdictDelete,
			wantReason:  "orphaned validation record for pr-142.example.org",
		},
		{
			name: "validation record for active environment",
			record: domain.Record{
				Name:   `_abc123def.api.example.org.`,
				Type:   domain.RecordTypeCNAME,
				Values: []string{"_xyz.acm-validations.aws."},
			},
			wantVerdict: domain.VerdictSkip,
			wantReason:  "CNAME (kept)",
		},
		{
			name: "plain CNAME",
			record: domain.Record{
				Name:   "docs.example.org.",
				Type:   domain.RecordTypeCNAME,
				Values: []string{"hosting.example.net."},
			},
			wantVerdict: domain.VerdictSkip,
			wantReason:  "CNAME (kept)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]domain.Record{tt.record}, live, rs)
			if got[0].Verdict != tt.wantVerdict {
				t.Errorf("verdict = %s, want %s", got[0].Verdict, tt.wantVerdict)
			}
			if got[0].Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", got[0].Reason, tt.wantReason)
			}
		})
	}
}

func TestClassifyChainedAliases(t *testing.T) {
	rs := testRuleset()
	live := liveSetWith([]string{"d111live.cloudfront.net"}, nil)

	records := []domain.Record{
		{Name: "a.example.org.", Type: domain.RecordTypeA, AliasTarget: "b.example.org."},
		{Name: "b.example.org.", Type: domain.RecordTypeA, AliasTarget: "d222dead.cloudfront.net."},
		{Name: "c.example.org.", Type: domain.RecordTypeA, AliasTarget: "d.example.org."},
		{Name: "d.example.org.", Type: domain.RecordTypeA, AliasTarget: "d111live.cloudfront.net."},
	}

	got := Classify(records, live, rs)

	want := []domain.Disposition{
		{Record: records[0], Verdict: domain.VerdictDelete, Reason: "chain to dead CDN: d222dead.cloudfront.net"},
		{Record: records[1], Verdict: domain.VerdictDelete, Reason: "dead CDN: d222dead.cloudfront.net"},
		{Record: records[2], Verdict: domain.VerdictKeep, Reason: "chain to live CDN: d111live.cloudfront.net"},
		{Record: records[3], Verdict: domain.VerdictKeep, Reason: "live CDN alias"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dispositions mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyMalformedRecordKept(t *testing.T) {
	rs := testRuleset()
	live := domain.NewLiveSet()

	tests := []struct {
		name   string
		record domain.Record
	}{
		{name: "missing name", record: domain.Record{Type: domain.RecordTypeA, Values: []string{"203.0.113.1"}}},
		{name: "missing type", record: domain.Record{Name: "x.example.org."}},
		{name: "unrecognised type", record: domain.Record{Name: "x.example.org.", Type: "NAPTR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify([]domain.Record{tt.record}, live, rs)
			if got[0].Verdict != domain.VerdictKeep {
				t.Errorf("verdict = %s, want KEEP", got[0].Verdict)
			}
			if got[0].Reason != "unparseable" {
				t.Errorf("reason = %q, want %q", got[0].Reason, "unparseable")
			}
		})
	}
}

func TestClassifyOneDispositionPerRecord(t *testing.T) {
	rs := testRuleset()
	live := domain.NewLiveSet()

	records := []domain.Record{
		{Name: "example.org.", Type: domain.RecordTypeNS, Values: []string{"ns-1.awsdns.org."}},
		{Name: "example.org.", Type: domain.RecordTypeSOA, Values: []string{"ns-1.awsdns.org. hostmaster."}},
		{Name: "old.example.org.", Type: domain.RecordTypeA, AliasTarget: "d222dead.cloudfront.net."},
		{Name: "mail.example.org.", Type: domain.RecordTypeA, Values: []string{"203.0.113.7"}},
	}

	got := Classify(records, live, rs)
	if len(got) != len(records) {
		t.Fatalf("got %d dispositions for %d records", len(got), len(records))
	}
	for i, d := range got {
		if d.Record.Key() != records[i].Key() {
			t.Errorf("disposition %d is for %s, want %s", i, d.Record.Key(), records[i].Key())
		}
	}

	summary := domain.Summarize(got)
	want := domain.Summary{Keep: 0, Delete: 1, Skip: 3}
	if diff := cmp.Diff(want, summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}
