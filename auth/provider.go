package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"click4news/types"
)

const identityToolkitBase = "https://identitytoolkit.googleapis.com/v1"

// Provider performs the interactive sign-in calls against the Identity
// Toolkit REST API using the project's web API key, and feeds results
// into the session observer.
type Provider struct {
	apiKey  string
	baseURL string
	http    *http.Client
	session *Session
}

func NewProvider(apiKey string, session *Session) *Provider {
	return &Provider{
		apiKey:  apiKey,
		baseURL: identityToolkitBase,
		http:    http.DefaultClient,
		session: session,
	}
}

type signInResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
	IDToken     string `json:"idToken"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmail exchanges an email/password pair for a user identity.
// Errors are returned for inline display; they never end the session.
func (p *Provider) SignInWithEmail(email, password string) (*types.User, error) {
	return p.signIn("accounts:signInWithPassword", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
}

// Register creates a new email/password account and signs it in.
func (p *Provider) Register(email, password string) (*types.User, error) {
	return p.signIn("accounts:signUp", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
}

// SignInWithGoogle exchanges a Google OAuth credential for a user
// identity, the federated counterpart of the popup flow.
func (p *Provider) SignInWithGoogle(idToken string) (*types.User, error) {
	return p.signIn("accounts:signInWithIdp", map[string]interface{}{
		"postBody":            "id_token=" + url.QueryEscape(idToken) + "&providerId=google.com",
		"requestUri":          "http://localhost",
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	})
}

// SendPasswordReset emails a reset link. Failures come back as plain
// errors for the caller to show inline.
func (p *Provider) SendPasswordReset(email string) error {
	_, err := p.call("accounts:sendOobCode", map[string]interface{}{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	})
	return err
}

// SignOut clears the current user and tells every observer.
func (p *Provider) SignOut() {
	if p.session != nil {
		p.session.set(nil)
	}
}

func (p *Provider) signIn(method string, payload map[string]interface{}) (*types.User, error) {
	body, err := p.call(method, payload)
	if err != nil {
		return nil, err
	}

	var resp signInResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("error decoding sign-in response: %w", err)
	}

	user := &types.User{
		UID:         resp.LocalID,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		PhotoURL:    resp.PhotoURL,
	}
	if p.session != nil {
		p.session.set(user)
	}
	return user, nil
}

func (p *Provider) call(method string, payload map[string]interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s?key=%s", p.baseURL, method, p.apiKey)
	resp, err := p.http.Post(endpoint, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(buf.Bytes(), &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("auth: %s", apiErr.Error.Message)
		}
		return nil, fmt.Errorf("auth: unexpected status %s", resp.Status)
	}
	return buf.Bytes(), nil
}
