package vote

import (
	"click4news/types"
)

// Notifier records a vote remotely on a best-effort basis. Implementations
// must not block the caller on the network and must swallow failures;
// local optimistic state is never rolled back.
type Notifier interface {
	NotifyVote(req types.VoteRequest)
}

// Ledger tracks the optimistic vote state for every article the session's
// user has interacted with. Counts start from the server baseline in the
// feature properties. Not safe for concurrent use; the session layer
// serializes access.
type Ledger struct {
	notifier Notifier
	userID   string
	states   map[string]*types.VoteState
}

func NewLedger(userID string, notifier Notifier) *Ledger {
	return &Ledger{
		notifier: notifier,
		userID:   userID,
		states:   make(map[string]*types.VoteState),
	}
}

// State returns the tally for an article, seeding it from the feature's
// baseline counts on first access.
func (l *Ledger) State(f types.Feature) types.VoteState {
	return *l.stateFor(f)
}

func (l *Ledger) stateFor(f types.Feature) *types.VoteState {
	id := f.Properties.MessageID
	if s, ok := l.states[id]; ok {
		return s
	}
	s := &types.VoteState{
		Likes:     f.Properties.Likes,
		FakeFlags: f.Properties.FakeFlags,
	}
	l.states[id] = s
	return s
}

// Cast applies the exclusive toggle: the same vote again retracts it, the
// opposite vote moves one unit across, and each transition is a single
// state update. The notifier fires after every transition.
func (l *Ledger) Cast(f types.Feature, kind types.VoteKind) types.VoteState {
	s := l.stateFor(f)

	switch {
	case s.UserVote == kind:
		// Retract.
		decrement(s, kind)
		s.UserVote = ""
	default:
		if s.UserVote != "" {
			decrement(s, s.UserVote)
		}
		increment(s, kind)
		s.UserVote = kind
	}

	if l.notifier != nil {
		l.notifier.NotifyVote(types.VoteRequest{
			Type:      kind,
			MessageID: f.Properties.MessageID,
			UserID:    l.userID,
		})
	}
	return *s
}

func increment(s *types.VoteState, kind types.VoteKind) {
	if kind == types.VoteLiked {
		s.Likes++
	} else {
		s.FakeFlags++
	}
}

func decrement(s *types.VoteState, kind types.VoteKind) {
	if kind == types.VoteLiked {
		s.Likes--
	} else {
		s.FakeFlags--
	}
}
