package platforms

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func TestRegistryCoversAllPlatforms(t *testing.T) {
	registry := Registry()
	for _, name := range []string{"twitter", "linkedin", "facebook", "instagram"} {
		pl, ok := registry[name]
		if !ok {
			t.Fatalf("registry missing %s", name)
		}
		if pl.Name != name {
			t.Errorf("entry %s has Name %q", name, pl.Name)
		}
		if pl.FetchIdentity == nil || pl.Publish == nil {
			t.Errorf("entry %s missing identity or publish func", name)
		}
	}
}

func TestTwitterPublish(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer tok" {
				t.Errorf("unexpected auth header %q", got)
			}
			var body struct {
				Text string `json:"text"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			if body.Text != "hello world" {
				t.Errorf("unexpected tweet text %q", body.Text)
			}
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"data":{"id":"12345"}}`)
		}))
		defer srv.Close()

		pl := newTwitter()
		pl.PublishURL = srv.URL

		result := pl.Publish(context.Background(), pl, "tok", "user1", "hello world")
		if !result.Success {
			t.Fatalf("expected success, got error %q", result.Error)
		}
		if result.PostID != "12345" {
			t.Errorf("expected post id from response, got %q", result.PostID)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"detail":"not allowed"}`)
		}))
		defer srv.Close()

		pl := newTwitter()
		pl.PublishURL = srv.URL

		result := pl.Publish(context.Background(), pl, "tok", "user1", "hello")
		if result.Success {
			t.Fatal("expected failure on 403")
		}
		if !strings.Contains(result.Error, "403") {
			t.Errorf("error should carry the upstream status, got %q", result.Error)
		}
	})
}

func TestLinkedInPublish(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Author string `json:"author"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Author != "urn:li:person:abc123" {
			t.Errorf("unexpected author %q", body.Author)
		}
		w.Header().Set("X-Restli-Id", "urn:li:share:1")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	pl := newLinkedIn()
	pl.PublishURL = srv.URL

	result := pl.Publish(context.Background(), pl, "tok", "abc123", "professional update")
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}
	if result.PostID != "urn:li:share:1" {
		t.Errorf("got post id %q", result.PostID)
	}
}

func TestLinkedInPublishResolvesUnknownAuthor(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"sub":"resolved","name":"Test Person"}`)
	})
	mux.HandleFunc("/ugcPosts", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Author string `json:"author"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Author != "urn:li:person:resolved" {
			t.Errorf("unexpected author %q", body.Author)
		}
		w.WriteHeader(http.StatusCreated)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	pl := newLinkedIn()
	pl.UserInfoURL = srv.URL + "/userinfo"
	pl.PublishURL = srv.URL + "/ugcPosts"

	result := pl.Publish(context.Background(), pl, "tok", "unknown", "post body")
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}
}

func TestLinkedInIdentityFromIDToken(t *testing.T) {
	claims := map[string]any{"sub": "person-1", "name": "Jamie Doe"}
	payload, _ := json.Marshal(claims)
	idToken := "eyJhbGciOiJSUzI1NiJ9." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"

	token := (&oauth2.Token{AccessToken: "tok"}).WithExtra(map[string]any{"id_token": idToken})

	pl := newLinkedIn()
	identity, err := pl.FetchIdentity(context.Background(), pl, token)
	if err != nil {
		t.Fatalf("FetchIdentity failed: %v", err)
	}
	if identity.ID != "person-1" || identity.Username != "Jamie Doe" {
		t.Fatalf("got identity %+v", identity)
	}
}

func TestFacebookPublish(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("bad form: %v", err)
		}
		if got := r.FormValue("message"); got != "community post" {
			t.Errorf("unexpected message %q", got)
		}
		if got := r.FormValue("access_token"); got != "tok" {
			t.Errorf("unexpected token %q", got)
		}
		if !strings.Contains(r.URL.Path, "fbuser") {
			t.Errorf("expected user id in path, got %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"id":"fbuser_99"}`)
	}))
	defer srv.Close()

	pl := newFacebook()
	pl.PublishURL = srv.URL + "/%s/feed"

	result := pl.Publish(context.Background(), pl, "tok", "fbuser", "community post")
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Error)
	}
	if result.PostID != "fbuser_99" {
		t.Errorf("got post id %q", result.PostID)
	}
}

func TestInstagramPublishIsStub(t *testing.T) {
	pl := newInstagram()

	result := pl.Publish(context.Background(), pl, "tok", "iguser", "caption")
	if !result.Success {
		t.Fatal("instagram stub should report success")
	}
	if !strings.Contains(result.Message, "would publish") {
		t.Fatalf("expected stub message, got %q", result.Message)
	}
}

func TestOAuthConfig(t *testing.T) {
	pl := newTwitter()
	cfg := pl.OAuthConfig("client", "secret", "http://localhost:8000/oauth/twitter/callback")

	url := cfg.AuthCodeURL("42:state")
	if !strings.Contains(url, "state=42%3Astate") {
		t.Errorf("auth url missing state: %s", url)
	}
	if cfg.Endpoint.AuthStyle != oauth2.AuthStyleInHeader {
		t.Error("twitter token exchange must use basic auth")
	}
}
