package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

func newFacebook() *Platform {
	return &Platform{
		Name:        "facebook",
		AuthURL:     "https://www.facebook.com/v18.0/dialog/oauth",
		TokenURL:    "https://graph.facebook.com/v18.0/oauth/access_token",
		AuthStyle:   oauth2.AuthStyleInParams,
		Scopes:      []string{"pages_manage_posts", "pages_read_engagement", "pages_show_list"},
		UserInfoURL: "https://graph.facebook.com/v18.0/me",
		// %s is the platform user id
		PublishURL: "https://graph.facebook.com/v18.0/%s/feed",

		FetchIdentity: facebookIdentity,
		Publish:       facebookPublish,
	}
}

func facebookIdentity(ctx context.Context, p *Platform, token *oauth2.Token) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.UserInfoURL+"?fields=id,name&access_token="+url.QueryEscape(token.AccessToken), nil)
	if err != nil {
		return nil, err
	}

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
		err = fmt.Errorf("facebook user lookup failed: %d - %s", resp.StatusCode, string(raw))
		slog.Info(err.Error())
		return nil, err
	}

	var parsed struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	return &Identity{ID: parsed.ID, Username: parsed.Name}, nil
}

func facebookPublish(ctx context.Context, p *Platform, accessToken, platformUserID, content string) *PublishResult {
	form := url.Values{}
	form.Set("message", content)
	form.Set("access_token", accessToken)

	endpoint := fmt.Sprintf(p.PublishURL, platformUserID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return &PublishResult{Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient().Do(req)
	if err != nil {
		slog.Info(err.Error())
		return &PublishResult{Error: err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return &PublishResult{Error: fmt.Sprintf("facebook api error: %d - %s", resp.StatusCode, string(raw))}
	}

	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &PublishResult{Success: true, Message: "post published to Facebook"}
	}
	return &PublishResult{Success: true, Message: "post published to Facebook", PostID: parsed.ID}
}
