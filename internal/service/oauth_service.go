package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	config "github.com/Rutuja303/contentforge/configs"
	"github.com/Rutuja303/contentforge/internal/models"
	"github.com/Rutuja303/contentforge/internal/platforms"
	"github.com/Rutuja303/contentforge/internal/repository"
	"github.com/Rutuja303/contentforge/internal/transfer"
	"github.com/Rutuja303/contentforge/pkg/utils"
)

const defaultTokenLifetime = time.Hour

type OAuthService interface {
	Initiate(ctx context.Context, userID int64, platform string) (*transfer.OAuthInitiation, error)
	Callback(ctx context.Context, platform, code, state string) (*models.PlatformConnection, error)
	ListConnections(ctx context.Context, userID int64) ([]transfer.ConnectionInfo, error)
	Disconnect(ctx context.Context, userID int64, platform string) error
	Refresh(ctx context.Context, conn *models.PlatformConnection) error
}

type oauthService struct {
	cfg      config.Config
	registry map[string]*platforms.Platform
	u        repository.UserRepository
	pc       repository.PlatformConnectionRepository
}

func NewOAuthService(
	cfg config.Config,
	registry map[string]*platforms.Platform,
	u repository.UserRepository,
	pc repository.PlatformConnectionRepository) OAuthService {
	return &oauthService{
		cfg:      cfg,
		registry: registry,
		u:        u,
		pc:       pc,
	}
}

func (s *oauthService) credentials(platform string) (config.OAuthCredentials, bool) {
	var creds config.OAuthCredentials
	switch platform {
	case "twitter":
		creds = s.cfg.Twitter
	case "linkedin":
		creds = s.cfg.LinkedIn
	case "facebook":
		creds = s.cfg.Facebook
	case "instagram":
		creds = s.cfg.Instagram
	}
	return creds, creds.ClientID != "" && creds.ClientSecret != ""
}

func (s *oauthService) oauthConfig(pl *platforms.Platform, creds config.OAuthCredentials) *oauth2.Config {
	redirect := fmt.Sprintf("%s/oauth/%s/callback", s.cfg.BaseURL, pl.Name)
	return pl.OAuthConfig(creds.ClientID, creds.ClientSecret, redirect)
}

// Initiate builds the authorization URL for a platform. When the user
// already holds an unexpired active connection no new flow starts.
func (s *oauthService) Initiate(ctx context.Context, userID int64, platform string) (*transfer.OAuthInitiation, error) {
	pl, ok := s.registry[platform]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported platform %q", ErrInvalidInput, platform)
	}
	creds, configured := s.credentials(platform)
	if !configured {
		return nil, fmt.Errorf("%w: %s OAuth is not configured", ErrInvalidInput, platform)
	}

	conn, exists, err := s.pc.GetActive(ctx, userID, platform)
	if err != nil {
		return nil, err
	}
	if exists && (!conn.ExpiresAt.Valid || conn.ExpiresAt.Time.After(time.Now())) {
		return &transfer.OAuthInitiation{
			Status:   "connected",
			Platform: platform,
			Message:  fmt.Sprintf("%s account is already connected", platform),
		}, nil
	}

	random, err := utils.GenerateRandomKey(24)
	if err != nil {
		return nil, err
	}
	state := fmt.Sprintf("%d:%s", userID, random)

	return &transfer.OAuthInitiation{
		Status:   "pending",
		Platform: platform,
		AuthURL:  s.oauthConfig(pl, creds).AuthCodeURL(state),
		State:    state,
	}, nil
}

// parseState splits "<user_id>:<random>" and rejects anything else.
func parseState(state string) (int64, error) {
	parts := strings.SplitN(state, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return 0, fmt.Errorf("%w: malformed state", ErrInvalidInput)
	}
	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: malformed state", ErrInvalidInput)
	}
	return userID, nil
}

// Callback finishes the flow: exchange the code, look up the platform
// identity, and store the encrypted tokens. Any failure aborts before
// a row is written, so no partial connection can persist.
func (s *oauthService) Callback(ctx context.Context, platform, code, state string) (*models.PlatformConnection, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: code is empty", ErrInvalidInput)
	}
	userID, err := parseState(state)
	if err != nil {
		return nil, err
	}

	pl, ok := s.registry[platform]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported platform %q", ErrInvalidInput, platform)
	}
	creds, configured := s.credentials(platform)
	if !configured {
		return nil, fmt.Errorf("%w: %s OAuth is not configured", ErrInvalidInput, platform)
	}

	_, exists, err := s.u.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	token, err := s.oauthConfig(pl, creds).Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	identity, err := pl.FetchIdentity(ctx, pl, token)
	if err != nil {
		return nil, err
	}

	return s.storeConnection(ctx, userID, pl.Name, token, identity)
}

func (s *oauthService) storeConnection(ctx context.Context, userID int64, platform string, token *oauth2.Token, identity *platforms.Identity) (*models.PlatformConnection, error) {
	key := []byte(s.cfg.SecretKey)

	accessToken, err := utils.Encrypt([]byte(token.AccessToken), key)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	var refreshToken sql.NullString
	if token.RefreshToken != "" {
		encrypted, err := utils.Encrypt([]byte(token.RefreshToken), key)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		refreshToken = sql.NullString{String: encrypted, Valid: true}
	}

	expiresAt := token.Expiry
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(defaultTokenLifetime)
	}

	conn := models.PlatformConnection{
		UserID:           userID,
		Platform:         platform,
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresAt:        sql.NullTime{Time: expiresAt, Valid: true},
		PlatformUserID:   sql.NullString{String: identity.ID, Valid: identity.ID != ""},
		PlatformUsername: sql.NullString{String: identity.Username, Valid: identity.Username != ""},
		IsActive:         true,
	}

	existing, exists, err := s.pc.GetByUserAndPlatform(ctx, userID, platform)
	if err != nil {
		return nil, err
	}
	if exists {
		conn.ID = existing.ID
		if err := s.pc.UpdateTokens(ctx, &conn); err != nil {
			return nil, err
		}
	} else {
		id, err := s.pc.Create(ctx, &conn)
		if err != nil {
			return nil, err
		}
		conn.ID = id
	}

	slog.Info("platform connected", "user_id", userID, "platform", platform, "username", identity.Username)
	return &conn, nil
}

func (s *oauthService) ListConnections(ctx context.Context, userID int64) ([]transfer.ConnectionInfo, error) {
	conns, err := s.pc.ListActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	infos := make([]transfer.ConnectionInfo, 0, len(conns))
	for _, conn := range conns {
		info := transfer.ConnectionInfo{
			Platform:         conn.Platform,
			PlatformUsername: conn.PlatformUsername.String,
			ConnectedAt:      conn.CreatedAt,
		}
		if conn.ExpiresAt.Valid {
			t := conn.ExpiresAt.Time
			info.ExpiresAt = &t
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Disconnect deactivates the connection but keeps the row, so history
// referencing the platform stays queryable.
func (s *oauthService) Disconnect(ctx context.Context, userID int64, platform string) error {
	conn, exists, err := s.pc.GetActive(ctx, userID, platform)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s connection", ErrNotFound, platform)
	}
	return s.pc.Deactivate(ctx, conn.ID)
}

// Refresh exchanges the stored refresh token for fresh credentials.
func (s *oauthService) Refresh(ctx context.Context, conn *models.PlatformConnection) error {
	if !conn.RefreshToken.Valid {
		return fmt.Errorf("%w: connection has no refresh token", ErrInvalidInput)
	}

	pl, ok := s.registry[conn.Platform]
	if !ok {
		return fmt.Errorf("%w: unsupported platform %q", ErrInvalidInput, conn.Platform)
	}
	creds, configured := s.credentials(conn.Platform)
	if !configured {
		return fmt.Errorf("%w: %s OAuth is not configured", ErrInvalidInput, conn.Platform)
	}

	key := []byte(s.cfg.SecretKey)
	refreshToken, err := utils.Decrypt(conn.RefreshToken.String, key)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	source := s.oauthConfig(pl, creds).TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	accessToken, err := utils.Encrypt([]byte(token.AccessToken), key)
	if err != nil {
		return err
	}
	conn.AccessToken = accessToken

	if token.RefreshToken != "" {
		encrypted, err := utils.Encrypt([]byte(token.RefreshToken), key)
		if err != nil {
			return err
		}
		conn.RefreshToken = sql.NullString{String: encrypted, Valid: true}
	}

	expiresAt := token.Expiry
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(defaultTokenLifetime)
	}
	conn.ExpiresAt = sql.NullTime{Time: expiresAt, Valid: true}

	if err := s.pc.UpdateTokens(ctx, conn); err != nil {
		return err
	}
	slog.Info("refreshed platform tokens", "user_id", conn.UserID, "platform", conn.Platform)
	return nil
}
