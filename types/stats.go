package types

// UserStats is the read-only credibility snapshot fetched once per
// session. It is never mutated locally.
type UserStats struct {
	TotalArticles          int     `json:"total_articles"`
	TotalLikesReceived     int     `json:"total_likes_received"`
	TotalFakeFlagsReceived int     `json:"total_fakeflags_received"`
	CredibilityScore       float64 `json:"credibility_score"`
}

// TrustTier is the label shown next to a source, derived from its
// credibility score.
type TrustTier struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}
