package popup

import (
	"math/rand"

	"click4news/types"
)

// Selection is the set of articles resolved from one map click and which
// of them the popup currently shows. It lives from the click that created
// it until dismissal or the next click.
type Selection struct {
	Longitude  float64
	Latitude   float64
	Candidates []types.Feature
	Index      int
}

// NewSelection starts at the first candidate. Returns nil when the click
// resolved nothing, so no popup state is created.
func NewSelection(lng, lat float64, candidates []types.Feature) *Selection {
	if len(candidates) == 0 {
		return nil
	}
	return &Selection{
		Longitude:  lng,
		Latitude:   lat,
		Candidates: candidates,
		Index:      0,
	}
}

// Current is the article the popup shows.
func (s *Selection) Current() types.Feature {
	return s.Candidates[s.Index]
}

// Next advances to the following candidate, wrapping back to the first.
// With a single candidate it wraps to itself.
func (s *Selection) Next() {
	s.Index = (s.Index + 1) % len(s.Candidates)
}

// Multiple reports whether the popup should offer a next-article button.
func (s *Selection) Multiple() bool {
	return len(s.Candidates) > 1
}

// SourceLabel names the article's origin: the submitting user for
// user-generated articles, otherwise the feed's user id.
func SourceLabel(f types.Feature) string {
	if f.Properties.Category == types.CategoryUserGenerated {
		return types.CategoryUserGenerated
	}
	if f.Properties.UserID != "" {
		return f.Properties.UserID
	}
	return "Unknown"
}

// TrustTierForScore maps a credibility score to its display tier.
func TrustTierForScore(score float64) types.TrustTier {
	switch {
	case score >= 91:
		return types.TrustTier{Label: "Verified Source", Emoji: "🛡", Color: "#2e7d32"}
	case score >= 61:
		return types.TrustTier{Label: "Trusted Contributor", Emoji: "✅", Color: "#43a047"}
	case score >= 41:
		return types.TrustTier{Label: "Community Voice", Emoji: "🗣", Color: "#fbc02d"}
	case score >= 21:
		return types.TrustTier{Label: "Unreliable Source", Emoji: "❗", Color: "#fb8c00"}
	default:
		return types.TrustTier{Label: "Flagged Account", Emoji: "🚩", Color: "#e53935"}
	}
}

// TrustTierForFeature picks the tier shown on the popup card.
// User-generated articles are always Community Voice; feed articles get a
// credibility draw in the 61-100 band until the feed carries real scores.
func TrustTierForFeature(f types.Feature) types.TrustTier {
	if f.Properties.Category == types.CategoryUserGenerated {
		return TrustTierForScore(50)
	}
	return TrustTierForScore(61 + rand.Float64()*39)
}
