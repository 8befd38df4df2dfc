package classifier

import (
	"mwhitfielddev/zonekeeper/internal/zone/domain"
	"mwhitfielddev/zonekeeper/internal/zone/ruleset"
)

// aliasIndex maps normalized record names to their alias records, for
// chain resolution.
type aliasIndex map[string]domain.Record

// buildAliasIndex indexes the alias records of a zone snapshot by
// normalized name. Where a name carries both an A and an AAAA alias the
// A record wins; they point at the same target in practice.
func buildAliasIndex(records []domain.Record) aliasIndex {
	idx := make(aliasIndex)
	for _, r := range records {
		if !r.IsAlias() {
			continue
		}
		key := domain.Normalize(r.Name)
		if existing, ok := idx[key]; ok && existing.Type == domain.RecordTypeA {
			continue
		}
		idx[key] = r
	}
	return idx
}

// Resolve follows same-zone alias indirection from the given name to
// its ultimate target: while the current target names another alias
// record in the zone, substitute that record's target and repeat. It
// stops as soon as the target is external (a CDN-canonical domain or
// any name with no alias record in the zone) or the hop cap is hit.
// The last-seen target is returned; resolution never fails, so a
// cyclic zone terminates at the cap with whatever name it was on.
func Resolve(idx aliasIndex, name string, rs *ruleset.Ruleset) string {
	current := domain.Normalize(name)

	for hop := 0; hop < rs.MaxAliasHops; hop++ {
		if rs.IsCDNDomain(current) {
			return current
		}
		rec, ok := idx[current]
		if !ok {
			return current
		}
		current = domain.Normalize(rec.AliasTarget)
	}

	return current
}
