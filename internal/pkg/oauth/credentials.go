package oauth

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Credentials describes how the service authenticates against the backend.
// A client id and token URL select the client-credentials grant; otherwise a
// non-empty Token is sent as a static bearer credential.
type Credentials struct {
	Token        string
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// UsesClientCredentials reports whether tokens are fetched from TokenURL.
func (c Credentials) UsesClientCredentials() bool {
	return c.ClientID != "" && c.TokenURL != ""
}

// NewTokenSource returns the token source matching creds, or nil when the
// backend is called without credentials. httpClient is used to reach the
// token endpoint and may be nil.
func NewTokenSource(ctx context.Context, creds Credentials, httpClient *http.Client) oauth2.TokenSource {
	if creds.UsesClientCredentials() {
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}
		config := &clientcredentials.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			TokenURL:     creds.TokenURL,
			Scopes:       creds.Scopes,
		}
		return config.TokenSource(ctx)
	}

	if creds.Token != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.Token, TokenType: "Bearer"})
	}
	return nil
}
