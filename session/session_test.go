package session

import (
	"testing"
	"time"

	"click4news/types"
)

type noopNotifier struct {
	votes []types.VoteRequest
}

func (n *noopNotifier) NotifyVote(req types.VoteRequest) {
	n.votes = append(n.votes, req)
}

func testFeatures() []types.Feature {
	return []types.Feature{
		types.NewPointFeature(0, 0, types.NewsProperties{Title: "origin", MessageID: "m1", Likes: 2}),
		types.NewPointFeature(1, 1, types.NewsProperties{Title: "nearby", MessageID: "m2"}),
		types.NewPointFeature(40, 0, types.NewsProperties{Title: "distant", MessageID: "m3"}),
	}
}

// waitRevealed polls until the ring animation reveals the popup.
func waitRevealed(t *testing.T, s *Session) PopupState {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if state := s.Popup(); state.Revealed {
			return state
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("popup never revealed")
	return PopupState{}
}

func TestClickResolvesNearbyAndRevealsAfterRing(t *testing.T) {
	s := New("u-1", testFeatures(), nil)

	// At world zoom, 30px covers roughly five degrees; the two features
	// near the origin are candidates, the distant one is not.
	candidates := s.Click(0, 0)
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Properties.Title != "origin" || candidates[1].Properties.Title != "nearby" {
		t.Errorf("candidate order: %q, %q", candidates[0].Properties.Title, candidates[1].Properties.Title)
	}

	// Content is withheld until the ring completes.
	if state := s.Popup(); state.Revealed {
		t.Error("popup revealed before ring completed")
	}

	state := waitRevealed(t, s)
	if state.Article.Properties.Title != "origin" {
		t.Errorf("revealed article = %q", state.Article.Properties.Title)
	}
	if !state.Multiple {
		t.Error("Multiple should be true with 2 candidates")
	}
	if state.Votes.Likes != 2 {
		t.Errorf("baseline likes = %d", state.Votes.Likes)
	}
}

func TestClickOnEmptyAreaIsNoOp(t *testing.T) {
	s := New("u-1", testFeatures(), nil)

	if got := s.Click(-120, -60); got != nil {
		t.Errorf("expected no candidates, got %d", len(got))
	}
	if state := s.Popup(); state.Revealed || state.Article != nil {
		t.Errorf("popup state created for empty click: %+v", state)
	}
}

func TestNextArticleCycles(t *testing.T) {
	s := New("u-1", testFeatures(), nil)
	s.Click(0, 0)
	waitRevealed(t, s)

	s.NextArticle()
	if got := s.Popup().Article.Properties.Title; got != "nearby" {
		t.Errorf("after Next: %q", got)
	}
	s.NextArticle()
	if got := s.Popup().Article.Properties.Title; got != "origin" {
		t.Errorf("after wrap: %q", got)
	}
}

func TestDismissClearsSelectionAndRing(t *testing.T) {
	s := New("u-1", testFeatures(), nil)
	s.Click(0, 0)
	s.Dismiss()

	state := s.Popup()
	if state.Revealed || state.Article != nil {
		t.Errorf("selection survived dismissal: %+v", state)
	}
	if state.RingRadius != 0 {
		t.Errorf("ring radius = %v after dismissal", state.RingRadius)
	}

	// The canceled timer must not reveal later.
	time.Sleep(600 * time.Millisecond)
	if s.Popup().Revealed {
		t.Error("orphaned ring timer revealed the popup after dismissal")
	}
}

func TestNewClickReplacesSelection(t *testing.T) {
	s := New("u-1", testFeatures(), nil)
	s.Click(0, 0)
	waitRevealed(t, s)

	// A new gesture cancels the old state and starts over.
	candidates := s.Click(40, 0)
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	state := waitRevealed(t, s)
	if state.Article.Properties.Title != "distant" {
		t.Errorf("revealed article = %q", state.Article.Properties.Title)
	}
}

func TestCastVoteThroughSession(t *testing.T) {
	n := &noopNotifier{}
	s := New("u-9", testFeatures(), n)
	s.Click(0, 0)
	waitRevealed(t, s)

	state, ok := s.CastVote(types.VoteLiked)
	if !ok {
		t.Fatal("vote rejected with an active selection")
	}
	if state.Likes != 3 || state.UserVote != types.VoteLiked {
		t.Errorf("vote state: %+v", state)
	}
	if len(n.votes) != 1 || n.votes[0].UserID != "u-9" {
		t.Errorf("notifier calls: %+v", n.votes)
	}

	// No selection, no vote.
	s.Dismiss()
	if _, ok := s.CastVote(types.VoteLiked); ok {
		t.Error("vote accepted without a selection")
	}
}

func TestFilterNarrowsClickCandidates(t *testing.T) {
	s := New("u-1", testFeatures(), nil)
	s.SetFilter(types.FilterState{Keyword: "origin"})

	candidates := s.Click(0, 0)
	if len(candidates) != 1 || candidates[0].Properties.Title != "origin" {
		t.Errorf("filtered click candidates: %+v", candidates)
	}
}

func TestManagerReusesAndDropsSessions(t *testing.T) {
	cache := staticSource{features: testFeatures()}
	m := NewManager(cache, nil)

	a := m.Get("u-1")
	if m.Get("u-1") != a {
		t.Error("manager created a second session for the same user")
	}
	if m.Get("u-2") == a {
		t.Error("sessions shared across users")
	}

	m.Drop("u-1")
	if m.Get("u-1") == a {
		t.Error("dropped session was reused")
	}
}

type staticSource struct {
	features []types.Feature
}

func (s staticSource) Snapshot() []types.Feature {
	return s.features
}
