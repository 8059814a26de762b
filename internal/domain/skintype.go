package domain

import "sort"

// Canonical skin-type tokens. The vocabulary follows the Indonesian source
// data; SkinAll marks products compatible with every skin type.
const (
	SkinAcneProne   = "berjerawat"
	SkinOily        = "berminyak"
	SkinDry         = "kering"
	SkinSensitive   = "sensitif"
	SkinNormal      = "normal"
	SkinCombination = "kombinasi"
	SkinDull        = "kusam"
	SkinAll         = "semua"
)

// CanonicalSkinTokens is the full controlled vocabulary.
var CanonicalSkinTokens = map[string]bool{
	SkinAcneProne:   true,
	SkinOily:        true,
	SkinDry:         true,
	SkinSensitive:   true,
	SkinNormal:      true,
	SkinCombination: true,
	SkinDull:        true,
	SkinAll:         true,
}

// TokenSet is a set of canonical skin-type tokens. A product's TokenSet is
// derived once at catalog build time and never mutated afterwards.
type TokenSet map[string]struct{}

// NewTokenSet creates a TokenSet from the given tokens.
func NewTokenSet(tokens ...string) TokenSet {
	s := make(TokenSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether the set contains the token.
func (s TokenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Add inserts a token into the set.
func (s TokenSet) Add(token string) {
	s[token] = struct{}{}
}

// Tokens returns the set members in sorted order.
func (s TokenSet) Tokens() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
