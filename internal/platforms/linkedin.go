package platforms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

func newLinkedIn() *Platform {
	return &Platform{
		Name:        "linkedin",
		AuthURL:     "https://www.linkedin.com/oauth/v2/authorization",
		TokenURL:    "https://www.linkedin.com/oauth/v2/accessToken",
		AuthStyle:   oauth2.AuthStyleInParams,
		Scopes:      []string{"openid", "profile", "email", "w_member_social"},
		UserInfoURL: "https://api.linkedin.com/v2/userinfo",
		PublishURL:  "https://api.linkedin.com/v2/ugcPosts",

		FetchIdentity: linkedInIdentity,
		Publish:       linkedInPublish,
	}
}

// linkedInIdentity prefers the OpenID id_token bundled with the token
// response; the userinfo endpoint is the fallback when none came back.
func linkedInIdentity(ctx context.Context, p *Platform, token *oauth2.Token) (*Identity, error) {
	if idToken, ok := token.Extra("id_token").(string); ok && idToken != "" {
		if identity, err := linkedInIdentityFromIDToken(idToken); err == nil {
			return identity, nil
		} else {
			slog.Info(err.Error())
		}
	}
	return linkedInUserInfo(ctx, p, token.AccessToken)
}

func linkedInIdentityFromIDToken(idToken string) (*Identity, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return nil, fmt.Errorf("decode id_token: %w", err)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("id_token missing sub claim")
	}
	name, _ := claims["name"].(string)
	if name == "" {
		given, _ := claims["given_name"].(string)
		family, _ := claims["family_name"].(string)
		name = given + " " + family
	}
	return &Identity{ID: sub, Username: name}, nil
}

func linkedInUserInfo(ctx context.Context, p *Platform, accessToken string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

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
		err = fmt.Errorf("linkedin user lookup failed: %d - %s", resp.StatusCode, string(raw))
		slog.Info(err.Error())
		return nil, err
	}

	var parsed struct {
		Sub  string `json:"sub"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	return &Identity{ID: parsed.Sub, Username: parsed.Name}, nil
}

func linkedInPublish(ctx context.Context, p *Platform, accessToken, platformUserID, content string) *PublishResult {
	if platformUserID == "" || platformUserID == "unknown" {
		identity, err := linkedInUserInfo(ctx, p, accessToken)
		if err != nil {
			return &PublishResult{Error: err.Error()}
		}
		platformUserID = identity.ID
	}

	body := map[string]any{
		"author":         "urn:li:person:" + platformUserID,
		"lifecycleState": "PUBLISHED",
		"specificContent": map[string]any{
			"com.linkedin.ugc.ShareContent": map[string]any{
				"shareCommentary": map[string]any{
					"text": content,
				},
				"shareMediaCategory": "NONE",
			},
		},
		"visibility": map[string]any{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return &PublishResult{Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.PublishURL, bytes.NewReader(payload))
	if err != nil {
		return &PublishResult{Error: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	resp, err := httpClient().Do(req)
	if err != nil {
		slog.Info(err.Error())
		return &PublishResult{Error: err.Error()}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return &PublishResult{Error: fmt.Sprintf("linkedin api error: %d - %s", resp.StatusCode, string(raw))}
	}

	return &PublishResult{Success: true, Message: "post published to LinkedIn", PostID: resp.Header.Get("X-Restli-Id")}
}
