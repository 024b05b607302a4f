package types

// VoteKind is the wire value sent to the vote-recording service.
type VoteKind string

const (
	VoteLiked       VoteKind = "LIKED"
	VoteFakeFlagged VoteKind = "FAKEFLAGGED"
)

// VoteState is the optimistic per-article tally for one session. Counts
// start from the server-supplied baseline in the feature properties; the
// current user's own vote moves them by exactly one.
type VoteState struct {
	Likes     int      `json:"likes"`
	FakeFlags int      `json:"fakeflags"`
	UserVote  VoteKind `json:"user_vote,omitempty"` // empty when no vote cast
}

// VoteRequest is the payload posted to the vote endpoint.
type VoteRequest struct {
	Type      VoteKind `json:"type"`
	MessageID string   `json:"message_id"`
	UserID    string   `json:"userid"`
}
