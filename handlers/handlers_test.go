package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	fbauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"

	"click4news/auth"
	"click4news/fetch"
	"click4news/routes"
	"click4news/session"
	"click4news/types"
)

type stubVerifier struct{}

func (stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error) {
	if idToken == "good-token" {
		return &fbauth.Token{UID: "u-1"}, nil
	}
	return nil, errors.New("invalid token")
}

type staticSource struct {
	features []types.Feature
}

func (s staticSource) Snapshot() []types.Feature {
	return s.features
}

func testRouter(t *testing.T) (*gin.Engine, *fetch.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(backend.Close)

	client := fetch.NewClient(backend.URL, backend.URL, backend.URL, backend.URL)
	source := staticSource{features: []types.Feature{
		types.NewPointFeature(0, 0, types.NewsProperties{Title: "origin", MessageID: "m1"}),
	}}
	sessions := session.NewManager(source, client)
	provider := auth.NewProvider("key", auth.NewSession())

	return routes.SetupRouter(provider, stubVerifier{}, sessions, client, nil), client
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequiresBearerToken(t *testing.T) {
	r, _ := testRouter(t)

	if w := doJSON(r, http.MethodGet, "/api/click4news/geojson", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status = %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/click4news/geojson", "bad-token", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d", w.Code)
	}
}

func TestGetGeoJSON(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodGet, "/api/click4news/geojson", "good-token", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var collection types.FeatureCollection
	if err := json.Unmarshal(w.Body.Bytes(), &collection); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(collection.Features) != 1 || collection.Features[0].Properties.Title != "origin" {
		t.Errorf("collection: %+v", collection)
	}
}

func TestSetTierRejectsUnknown(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodPost, "/api/click4news/view/tier", "good-token",
		map[string]interface{}{"tier": "galaxy"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown tier: status = %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/api/click4news/view/tier", "good-token",
		map[string]interface{}{"tier": "city"})
	if w.Code != http.StatusOK {
		t.Errorf("valid tier: status = %d", w.Code)
	}
}

func TestClickReportsCandidates(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodPost, "/api/click4news/click", "good-token",
		map[string]float64{"longitude": 0, "latitude": 0})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Candidates int `json:"candidates"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Candidates != 1 {
		t.Errorf("candidates = %d, want 1", resp.Candidates)
	}
}

func TestVoteWithoutSelectionConflicts(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(r, http.MethodPost, "/api/click4news/vote", "good-token",
		map[string]string{"type": "LIKED"})
	if w.Code != http.StatusConflict {
		t.Errorf("vote without selection: status = %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/api/click4news/vote", "good-token",
		map[string]string{"type": "MEH"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown vote type: status = %d", w.Code)
	}
}

func TestSubmitValidationAndGeolocation(t *testing.T) {
	r, client := testRouter(t)

	// Empty title: validation message, no network call.
	w := doJSON(r, http.MethodPost, "/api/click4news/submit", "good-token",
		map[string]interface{}{"summary": "s", "coordinates": map[string]float64{"longitude": 1, "latitude": 2}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty title: status = %d", w.Code)
	}

	// Missing coordinates behaves like a denied permission prompt.
	w = doJSON(r, http.MethodPost, "/api/click4news/submit", "good-token",
		map[string]interface{}{"title": "t", "summary": "s"})
	if w.Code != http.StatusForbidden {
		t.Errorf("denied geolocation: status = %d", w.Code)
	}

	// Complete request goes through.
	w = doJSON(r, http.MethodPost, "/api/click4news/submit", "good-token",
		map[string]interface{}{
			"title": "t", "summary": "s",
			"coordinates": map[string]float64{"longitude": 1, "latitude": 2},
		})
	if w.Code != http.StatusOK {
		t.Errorf("valid submission: status = %d, body = %s", w.Code, w.Body.String())
	}
	client.WaitForNotifications()
}
