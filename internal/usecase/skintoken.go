package usecase

import (
	"regexp"
	"strings"

	"github.com/glowmatch/backend/internal/domain"
)

// Filler words stripped from skin-type phrases before matching
// ("kulit berjerawat" and "acne skin" both reduce to the bare type).
var skinFillerRegex = regexp.MustCompile(`\b(kulit|dan|skin|and)\b`)

// skinDelimiterRegex splits a multi-valued skin-type field into phrases.
var skinDelimiterRegex = regexp.MustCompile(`[,|/;&]`)

// allSkinRegex detects the universal-compatibility signal: "semua"
// anywhere, or the standalone word "all" (word-bounded so "small" and
// friends do not match).
var allSkinRegex = regexp.MustCompile(`semua|\ball\b`)

// skinSynonymRules maps substring patterns onto canonical tokens.
// Rules are evaluated top to bottom; the first matching pattern wins.
// Both source-language and English synonyms are covered.
var skinSynonymRules = []struct {
	token    string
	patterns []string
}{
	{domain.SkinAcneProne, []string{"acne", "jerawat"}},
	{domain.SkinOily, []string{"oily", "berminyak"}},
	{domain.SkinDry, []string{"dry", "kering"}},
	{domain.SkinSensitive, []string{"sensitive", "sensitif"}},
	{domain.SkinCombination, []string{"comb", "kombinasi"}},
	{domain.SkinDull, []string{"dull", "kusam"}},
}

// userSkinTypeRules normalizes a user-supplied skin-type query into one
// canonical token. Same first-match-wins semantics as skinSynonymRules but
// with the query-side synonym groups (including the bare "normal" type).
var userSkinTypeRules = []struct {
	token    string
	patterns []string
}{
	{domain.SkinAcneProne, []string{"berjerawat", "jerawat", "acne"}},
	{domain.SkinOily, []string{"berminyak", "oily", "minyak"}},
	{domain.SkinDry, []string{"kering", "dry"}},
	{domain.SkinSensitive, []string{"sensitif", "sensitive"}},
	{domain.SkinNormal, []string{"normal"}},
	{domain.SkinCombination, []string{"kombinasi", "combination"}},
	{domain.SkinDull, []string{"kusam", "dull"}},
}

// canonicalizeSkinPhrase maps one free-text phrase onto a canonical token.
// Match order: exact vocabulary membership, then the universal token, then
// substring synonyms. Returns false when the phrase is unrecognizable.
func canonicalizeSkinPhrase(raw string) (string, bool) {
	t := strings.TrimSpace(strings.ToLower(raw))
	if t == "" {
		return "", false
	}
	t = strings.TrimSpace(skinFillerRegex.ReplaceAllString(t, ""))

	if domain.CanonicalSkinTokens[t] {
		return t, true
	}
	if allSkinRegex.MatchString(t) {
		return domain.SkinAll, true
	}
	for _, rule := range skinSynonymRules {
		for _, pattern := range rule.patterns {
			if strings.Contains(t, pattern) {
				return rule.token, true
			}
		}
	}
	return "", false
}

// ParseSkinTokens canonicalizes a raw skin-type field into a token set.
// A "semua"/"all" signal anywhere short-circuits the whole field to the
// universal token. Unmatched phrases are discarded; if nothing matches (or
// the field is empty) the result is {semua} — an unparseable compatibility
// field is treated as compatible with everyone rather than with no one.
func ParseSkinTokens(raw string) domain.TokenSet {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return domain.NewTokenSet(domain.SkinAll)
	}
	if allSkinRegex.MatchString(text) {
		return domain.NewTokenSet(domain.SkinAll)
	}

	tokens := domain.NewTokenSet()
	for _, phrase := range skinDelimiterRegex.Split(text, -1) {
		if token, ok := canonicalizeSkinPhrase(phrase); ok {
			tokens.Add(token)
		}
	}
	if len(tokens) == 0 {
		return domain.NewTokenSet(domain.SkinAll)
	}
	return tokens
}

// NormalizeUserSkinType maps a user-supplied skin-type string onto one
// canonical token. When no synonym group matches, the lower-cased raw
// string falls through unchanged: membership tests against it will almost
// always come up empty, which the caller reports as "no matches".
func NormalizeUserSkinType(userSkinType string) string {
	lower := strings.ToLower(strings.TrimSpace(userSkinType))
	if lower == domain.SkinAll || lower == "all" {
		return domain.SkinAll
	}
	for _, rule := range userSkinTypeRules {
		for _, pattern := range rule.patterns {
			if strings.Contains(lower, pattern) {
				return rule.token
			}
		}
	}
	return lower
}
