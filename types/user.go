package types

// User is the identity delivered by the auth provider. UID is the only
// field the rest of the client keys on.
type User struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photo_url"`
}
