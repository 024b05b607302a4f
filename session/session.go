// Package session holds the per-user client state the HTTP surface
// operates on: camera, loaded features, filters, the click selection and
// the vote ledger. Sessions replace the process-global state the browser
// client kept in component fields.
package session

import (
	"sync"

	"click4news/mapengine"
	"click4news/popup"
	"click4news/types"
	"click4news/vote"
)

// Session is one signed-in user's client state. A mutex serializes the
// handlers that touch it, standing in for the browser's single event
// loop.
type Session struct {
	mu sync.Mutex

	UserID string

	engine    *mapengine.Engine
	filter    types.FilterState
	selection *popup.Selection
	votes     *vote.Ledger
	ring      *mapengine.RingAnimator
	revealed  bool
	clickGen  int
}

// New loads the feature snapshot once; the session never re-reads it.
func New(userID string, features []types.Feature, notifier vote.Notifier) *Session {
	engine := mapengine.NewEngine(nil)
	engine.Load(features)
	return &Session{
		UserID: userID,
		engine: engine,
		votes:  vote.NewLedger(userID, notifier),
		ring:   mapengine.NewRingAnimator(),
	}
}

// View returns the current camera state.
func (s *Session) View() types.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.View()
}

// SetZoom forwards a zoom change with its origin tag.
func (s *Session) SetZoom(zoom float64, origin types.ZoomOrigin) types.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetZoom(zoom, origin)
	return s.engine.View()
}

// SetTier jumps to a named zoom tier, optionally recentering.
func (s *Session) SetTier(tier types.ZoomTier, reset bool) types.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetTier(tier, reset)
	return s.engine.View()
}

// SetTheme switches the map style.
func (s *Session) SetTheme(theme string) types.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetTheme(theme)
	return s.engine.View()
}

// SetFilter replaces the filter state; the feature set is re-derived on
// every read, never cached.
func (s *Session) SetFilter(filter types.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
}

// FilteredFeatures applies the current filter to the loaded snapshot.
func (s *Session) FilteredFeatures() []types.Feature {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mapengine.FilteredFeatures(s.engine.Features(), s.filter)
}

// Features returns the full loaded snapshot.
func (s *Session) Features() []types.Feature {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Features()
}

// Click resolves a map click against the filtered features. A non-empty
// candidate set creates a fresh selection and restarts the ring
// animation; the popup content is revealed only when the ring finishes.
// An empty set leaves all state untouched.
func (s *Session) Click(lng, lat float64) []types.Feature {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := mapengine.FilteredFeatures(s.engine.Features(), s.filter)
	project := mapengine.MercatorProjector(s.engine.View().Zoom)
	candidates := mapengine.ResolveClick(project, lng, lat, filtered)
	if len(candidates) == 0 {
		return nil
	}

	s.selection = popup.NewSelection(lng, lat, candidates)
	s.revealed = false
	s.clickGen++
	gen := s.clickGen
	s.ring.Start(func() {
		s.mu.Lock()
		// A completion from a superseded click must not reveal the
		// current selection.
		if s.clickGen == gen {
			s.revealed = true
		}
		s.mu.Unlock()
	})
	return candidates
}

// PopupState is what the popup surface renders.
type PopupState struct {
	Revealed   bool             `json:"revealed"`
	RingRadius float64          `json:"ring_radius"`
	Article    *types.Feature   `json:"article,omitempty"`
	Votes      *types.VoteState `json:"votes,omitempty"`
	Multiple   bool             `json:"multiple"`
	Source     string           `json:"source,omitempty"`
	Trust      *types.TrustTier `json:"trust,omitempty"`
}

// Popup reports the current selection. Before the ring completes only
// the ring radius is populated.
func (s *Session) Popup() PopupState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := PopupState{RingRadius: s.ring.Radius()}
	if s.selection == nil || !s.revealed {
		return state
	}

	article := s.selection.Current()
	votes := s.votes.State(article)
	trust := popup.TrustTierForFeature(article)
	state.Revealed = true
	state.Article = &article
	state.Votes = &votes
	state.Multiple = s.selection.Multiple()
	state.Source = popup.SourceLabel(article)
	state.Trust = &trust
	return state
}

// NextArticle cycles the selection. No-op without a selection.
func (s *Session) NextArticle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection != nil {
		s.selection.Next()
	}
}

// Dismiss clears the selection and cancels any in-flight ring so no
// orphaned timer keeps running.
func (s *Session) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = nil
	s.revealed = false
	s.clickGen++
	s.ring.Cancel()
}

// CastVote toggles the user's vote on the currently shown article.
func (s *Session) CastVote(kind types.VoteKind) (types.VoteState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selection == nil {
		return types.VoteState{}, false
	}
	return s.votes.Cast(s.selection.Current(), kind), true
}
