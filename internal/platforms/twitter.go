package platforms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
)

// Twitter's token endpoint wants the client credentials Basic-auth'd,
// unlike the other platforms.
func newTwitter() *Platform {
	return &Platform{
		Name:        "twitter",
		AuthURL:     "https://twitter.com/i/oauth2/authorize",
		TokenURL:    "https://api.twitter.com/2/oauth2/token",
		AuthStyle:   oauth2.AuthStyleInHeader,
		Scopes:      []string{"tweet.read", "tweet.write", "users.read", "offline.access"},
		UserInfoURL: "https://api.twitter.com/2/users/me",
		PublishURL:  "https://api.twitter.com/2/tweets",

		FetchIdentity: twitterIdentity,
		Publish:       twitterPublish,
	}
}

func twitterIdentity(ctx context.Context, p *Platform, token *oauth2.Token) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := httpClient().Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("twitter user lookup failed: %d - %s", resp.StatusCode, string(raw))
		slog.Info(err.Error())
		return nil, err
	}

	var parsed struct {
		Data struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	return &Identity{ID: parsed.Data.ID, Username: parsed.Data.Username}, nil
}

func twitterPublish(ctx context.Context, p *Platform, accessToken, platformUserID, content string) *PublishResult {
	payload, err := json.Marshal(map[string]string{"text": content})
	if err != nil {
		return &PublishResult{Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.PublishURL, bytes.NewReader(payload))
	if err != nil {
		return &PublishResult{Error: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient().Do(req)
	if err != nil {
		slog.Info(err.Error())
		return &PublishResult{Error: err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return &PublishResult{Error: fmt.Sprintf("twitter api error: %d - %s", resp.StatusCode, string(raw))}
	}

	var parsed struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &PublishResult{Success: true, Message: "tweet published"}
	}
	return &PublishResult{Success: true, Message: "tweet published", PostID: parsed.Data.ID}
}
