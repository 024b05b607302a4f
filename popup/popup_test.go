package popup

import (
	"testing"

	"click4news/types"
)

func feature(title, category, userID string) types.Feature {
	return types.NewPointFeature(0, 0, types.NewsProperties{
		Title: title, Category: category, UserID: userID,
	})
}

func TestNewSelectionEmptyCandidates(t *testing.T) {
	if s := NewSelection(0, 0, nil); s != nil {
		t.Errorf("expected nil selection for empty candidates, got %+v", s)
	}
}

func TestNextWrapsAround(t *testing.T) {
	s := NewSelection(0, 0, []types.Feature{
		feature("a", "", ""),
		feature("b", "", ""),
		feature("c", "", ""),
	})

	if s.Current().Properties.Title != "a" {
		t.Errorf("initial article = %q, want a", s.Current().Properties.Title)
	}

	// N calls on N candidates returns to index 0.
	for i := 0; i < 3; i++ {
		s.Next()
	}
	if s.Index != 0 {
		t.Errorf("after 3 Next calls index = %d, want 0", s.Index)
	}

	s.Next()
	if s.Current().Properties.Title != "b" {
		t.Errorf("second article = %q, want b", s.Current().Properties.Title)
	}
}

func TestNextSingleCandidateWrapsToItself(t *testing.T) {
	s := NewSelection(0, 0, []types.Feature{feature("only", "", "")})
	s.Next()
	if s.Index != 0 {
		t.Errorf("single-candidate Next moved index to %d", s.Index)
	}
	if s.Multiple() {
		t.Error("Multiple() true for single candidate")
	}
}

func TestSourceLabel(t *testing.T) {
	cases := []struct {
		f    types.Feature
		want string
	}{
		{feature("x", types.CategoryUserGenerated, "u1"), types.CategoryUserGenerated},
		{feature("x", "World", "reuters"), "reuters"},
		{feature("x", "World", ""), "Unknown"},
	}
	for _, tc := range cases {
		if got := SourceLabel(tc.f); got != tc.want {
			t.Errorf("SourceLabel(%q/%q) = %q, want %q", tc.f.Properties.Category, tc.f.Properties.UserID, got, tc.want)
		}
	}
}

func TestTrustTierForScore(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "Verified Source"},
		{91, "Verified Source"},
		{75, "Trusted Contributor"},
		{50, "Community Voice"},
		{30, "Unreliable Source"},
		{5, "Flagged Account"},
	}
	for _, tc := range cases {
		if got := TrustTierForScore(tc.score).Label; got != tc.want {
			t.Errorf("TrustTierForScore(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestTrustTierForFeatureUserGenerated(t *testing.T) {
	got := TrustTierForFeature(feature("x", types.CategoryUserGenerated, "u"))
	if got.Label != "Community Voice" {
		t.Errorf("user-generated tier = %q, want Community Voice", got.Label)
	}

	// Feed articles draw in the 61-100 band, never below Trusted Contributor.
	for i := 0; i < 50; i++ {
		tier := TrustTierForFeature(feature("x", "World", "src"))
		if tier.Label != "Trusted Contributor" && tier.Label != "Verified Source" {
			t.Fatalf("feed article tier = %q", tier.Label)
		}
	}
}
