package platforms

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Identity is the account a connection posts as on a platform.
type Identity struct {
	ID       string
	Username string
}

// PublishResult reports a single publish attempt. Failures carry the
// raw upstream status and body in Error; nothing is retried.
type PublishResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	PostID  string `json:"post_id,omitempty"`
}

// Platform bundles everything platform-specific: OAuth endpoints and
// scopes, the identity lookup, and the write call. Handlers and
// services select one from the registry instead of branching on the
// platform name.
type Platform struct {
	Name        string
	AuthURL     string
	TokenURL    string
	AuthStyle   oauth2.AuthStyle
	Scopes      []string
	UserInfoURL string
	PublishURL  string

	FetchIdentity func(ctx context.Context, p *Platform, token *oauth2.Token) (*Identity, error)
	Publish       func(ctx context.Context, p *Platform, accessToken, platformUserID, content string) *PublishResult
}

// OAuthConfig builds the oauth2 config for this platform with the
// given client credentials and redirect.
func (p *Platform) OAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       p.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   p.AuthURL,
			TokenURL:  p.TokenURL,
			AuthStyle: p.AuthStyle,
		},
	}
}

// Registry returns a fresh name-to-platform table. Callers own the
// returned map and may adjust endpoint URLs on the entries.
func Registry() map[string]*Platform {
	return map[string]*Platform{
		"twitter":   newTwitter(),
		"linkedin":  newLinkedIn(),
		"facebook":  newFacebook(),
		"instagram": newInstagram(),
	}
}

func httpClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
