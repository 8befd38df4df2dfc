package domain

import "strings"

// Normalize canonicalises a domain name for set membership and
// comparison: lower-cased, trailing root dot removed, surrounding
// whitespace trimmed, and the octal wildcard escape Route53 uses
// ("\052") mapped back to "*".
func Normalize(name string) string {
	n := strings.TrimSpace(strings.ToLower(name))
	n = strings.TrimSuffix(n, ".")
	n = strings.ReplaceAll(n, `\052`, "*")
	return n
}

// FirstLabel returns the leftmost label of a domain name, without any
// trailing dot handling ("_abc123.api.example.org" -> "_abc123").
func FirstLabel(name string) string {
	n := Normalize(name)
	if i := strings.IndexByte(n, '.'); i >= 0 {
		return n[:i]
	}
	return n
}

// ParentDomain returns the domain with its leftmost label removed
// ("_abc123.api.example.org" -> "api.example.org"). Returns "" when
// there is nothing after the first label.
func ParentDomain(name string) string {
	n := Normalize(name)
	if i := strings.IndexByte(n, '.'); i >= 0 && i < len(n)-1 {
		return n[i+1:]
	}
	return ""
}
