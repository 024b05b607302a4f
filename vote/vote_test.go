package vote

import (
	"testing"

	"click4news/types"
)

type recordingNotifier struct {
	requests []types.VoteRequest
}

func (n *recordingNotifier) NotifyVote(req types.VoteRequest) {
	n.requests = append(n.requests, req)
}

func article(id string, likes, flags int) types.Feature {
	return types.NewPointFeature(0, 0, types.NewsProperties{
		MessageID: id, Likes: likes, FakeFlags: flags,
	})
}

func TestCastLikeThenRetract(t *testing.T) {
	n := &recordingNotifier{}
	l := NewLedger("user-1", n)
	f := article("m1", 5, 2)

	s := l.Cast(f, types.VoteLiked)
	if s.Likes != 6 || s.FakeFlags != 2 || s.UserVote != types.VoteLiked {
		t.Fatalf("after like: %+v", s)
	}

	// Same vote again is self-inverse.
	s = l.Cast(f, types.VoteLiked)
	if s.Likes != 5 || s.FakeFlags != 2 || s.UserVote != "" {
		t.Fatalf("after retract: %+v", s)
	}

	if len(n.requests) != 2 {
		t.Fatalf("notifier fired %d times, want 2", len(n.requests))
	}
	for _, req := range n.requests {
		if req.Type != types.VoteLiked || req.MessageID != "m1" || req.UserID != "user-1" {
			t.Errorf("bad vote request: %+v", req)
		}
	}
}

func TestSwitchVoteMovesOneUnit(t *testing.T) {
	l := NewLedger("user-1", nil)
	f := article("m2", 10, 3)

	l.Cast(f, types.VoteLiked)
	s := l.Cast(f, types.VoteFakeFlagged)

	if s.Likes != 10 || s.FakeFlags != 4 {
		t.Errorf("after switch: likes=%d flags=%d, want 10/4", s.Likes, s.FakeFlags)
	}
	if s.UserVote != types.VoteFakeFlagged {
		t.Errorf("user vote = %q, want %q", s.UserVote, types.VoteFakeFlagged)
	}
}

func TestStateSeedsFromBaseline(t *testing.T) {
	l := NewLedger("user-1", nil)
	f := article("m3", 7, 1)

	s := l.State(f)
	if s.Likes != 7 || s.FakeFlags != 1 || s.UserVote != "" {
		t.Errorf("baseline state: %+v", s)
	}
}

func TestVoteStatePerArticle(t *testing.T) {
	l := NewLedger("user-1", nil)
	a := article("a", 0, 0)
	b := article("b", 0, 0)

	l.Cast(a, types.VoteLiked)
	sb := l.State(b)
	if sb.Likes != 0 || sb.UserVote != "" {
		t.Errorf("vote on a leaked into b: %+v", sb)
	}
}
