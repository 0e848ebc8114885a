package models

// TokenResponse is the body returned by the token endpoint after a
// successful username/password authentication.
type TokenResponse struct {
	// AccessToken is the compact JWS string to be presented as a bearer
	// credential on subsequent requests.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// CredentialsRequest is the body accepted by the token endpoint.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
