// Package auth wraps the Firebase identity provider: interactive
// sign-in, sign-out, password reset, and the session observer the rest
// of the client treats as the source of truth for the current user.
package auth

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

// InitVerifier builds the admin-side token verifier from the base64
// service credentials in the environment, the same way the Firestore
// client used to be bootstrapped.
func InitVerifier(ctx context.Context) (*fbauth.Client, error) {
	encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Firebase credentials: %w", err)
	}

	opt := option.WithCredentialsJSON(creds)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firebase auth client: %w", err)
	}
	return client, nil
}

// TokenVerifier checks a bearer ID token and yields the uid it belongs
// to. The Firebase admin client satisfies it; tests stub it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}
