// Package classifier is the zone reconciliation rule engine. It takes a
// zone snapshot and the live endpoint sets collected across all member
// accounts and produces one disposition per record. Classification is a
// pure function with a strict fail-safe bias: anything ambiguous or
// unverifiable is kept, never deleted.
package classifier

import (
	"fmt"
	"strings"

	"mwhitfielddev/zonekeeper/internal/zone/domain"
	"mwhitfielddev/zonekeeper/internal/zone/ruleset"
)

const validationPrefix = "_"

// Classify applies the reconciliation rules to every record in the
// snapshot, in order. Rules are evaluated by precedence; the first
// match wins.
func Classify(records []domain.Record, live *domain.LiveSet, rs *ruleset.Ruleset) []domain.Disposition {
	idx := buildAliasIndex(records)

	out := make([]domain.Disposition, 0, len(records))
	for _, r := range records {
		out = append(out, classifyRecord(r, idx, live, rs))
	}
	return out
}

func classifyRecord(r domain.Record, idx aliasIndex, live *domain.LiveSet, rs *ruleset.Ruleset) domain.Disposition {
	d := domain.Disposition{Record: r}

	// Malformed records are kept rather than crashing the run.
	if r.Name == "" || r.Type == "" {
		d.Verdict = domain.VerdictKeep
		d.Reason = "unparseable"
		return d
	}

	switch r.Type {
	case domain.RecordTypeNS, domain.RecordTypeSOA:
		d.Verdict = domain.VerdictSkip
		d.Reason = "essential"
		return d

	case domain.RecordTypeMX, domain.RecordTypeTXT:
		// May carry manually-managed ownership proofs. Never touched.
		d.Verdict = domain.VerdictSkip
		d.Reason = "email/verification"
		return d

	case domain.RecordTypeCNAME:
		return classifyCNAME(r, rs, d)

	case domain.RecordTypeA, domain.RecordTypeAAAA:
		if !r.IsAlias() {
			d.Verdict = domain.VerdictSkip
			d.Reason = "non-alias"
			return d
		}
		return classifyAlias(r, idx, live, rs, d)

	default:
		d.Verdict = domain.VerdictKeep
		d.Reason = "unparseable"
		return d
	}
}

// classifyCNAME handles certificate-validation records. A CNAME whose
// name starts with the validation sentinel prefix belongs to a
// certificate for the domain after the first label; when that domain
// matches a known-orphaned pattern the validation record is stale.
// Every other CNAME requires manual review and is kept.
func classifyCNAME(r domain.Record, rs *ruleset.Ruleset, d domain.Disposition) domain.Disposition {
	name := domain.Normalize(r.Name)

	if strings.HasPrefix(name, validationPrefix) {
		parent := domain.ParentDomain(name)
		if parent != "" && rs.MatchesOrphanPattern(parent) {
			d.Verdict = domain.VerdictDelete
			d.Reason = fmt.Sprintf("orphaned validation record for %s", parent)
			return d
		}
	}

	d.Verdict = domain.VerdictSkip
	d.Reason = "CNAME (kept)"
	return d
}

// classifyAlias handles A/AAAA alias records, the only class the tool
// deletes on its own authority. Precedence: protected allow-list, then
// live configured aliases, then direct CDN target liveness, then chain
// resolution. Unknown targets default to KEEP.
func classifyAlias(r domain.Record, idx aliasIndex, live *domain.LiveSet, rs *ruleset.Ruleset, d domain.Disposition) domain.Disposition {
	name := domain.Normalize(r.Name)
	target := domain.Normalize(r.AliasTarget)

	if rs.IsProtected(name) {
		d.Verdict = domain.VerdictKeep
		d.Reason = "infrastructure"
		return d
	}

	if live.HasAlias(name) {
		d.Verdict = domain.VerdictKeep
		d.Reason = "live CDN alias"
		return d
	}

	if rs.IsCDNDomain(target) {
		if live.HasCDNDomain(target) {
			d.Verdict = domain.VerdictKeep
			d.Reason = "live CDN alias"
			return d
		}
		d.Verdict = domain.VerdictDelete
		d.Reason = fmt.Sprintf("dead CDN: %s", target)
		return d
	}

	// The target is another in-zone record; follow the chain.
	resolved := Resolve(idx, target, rs)
	if rs.IsCDNDomain(resolved) {
		if live.HasCDNDomain(resolved) {
			d.Verdict = domain.VerdictKeep
			d.Reason = fmt.Sprintf("chain to live CDN: %s", resolved)
			return d
		}
		d.Verdict = domain.VerdictDelete
		d.Reason = fmt.Sprintf("chain to dead CDN: %s", resolved)
		return d
	}

	d.Verdict = domain.VerdictKeep
	d.Reason = fmt.Sprintf("unknown target: %s", target)
	return d
}
