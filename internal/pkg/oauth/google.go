package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	userInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

	// SessionName is the cookie session holding the OAuth state nonce.
	SessionName = "edukta_oauth"
	stateKey    = "oauth_state"
)

// GoogleUser is the subset of the Google userinfo response we consume.
type GoogleUser struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// GoogleConfig holds the OAuth client settings.
type GoogleConfig struct {
	ClientID      string
	ClientSecret  string
	CallbackURL   string
	SessionSecret string
}

// GoogleAuthenticator drives the Google OAuth2 code flow. The state nonce is
// kept in a cookie session between the login redirect and the callback.
type GoogleAuthenticator struct {
	config *oauth2.Config
	store  *sessions.CookieStore
}

// NewGoogleAuthenticator creates a GoogleAuthenticator.
func NewGoogleAuthenticator(cfg GoogleConfig) *GoogleAuthenticator {
	return &GoogleAuthenticator{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
		store: sessions.NewCookieStore([]byte(cfg.SessionSecret)),
	}
}

// Enabled reports whether OAuth credentials are configured.
func (a *GoogleAuthenticator) Enabled() bool {
	return a.config.ClientID != "" && a.config.ClientSecret != ""
}

// BeginLogin stores the state nonce in the session and returns the consent URL.
func (a *GoogleAuthenticator) BeginLogin(w http.ResponseWriter, r *http.Request, state string) (string, error) {
	session, err := a.store.Get(r, SessionName)
	if err != nil {
		// A stale or tampered cookie decodes to a fresh session; only a
		// store misconfiguration is fatal, and Get reports that too.
		session, _ = a.store.New(r, SessionName)
	}
	session.Values[stateKey] = state
	session.Options.MaxAge = 600
	session.Options.HttpOnly = true
	if err := session.Save(r, w); err != nil {
		return "", fmt.Errorf("failed to save oauth session: %w", err)
	}

	return a.config.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// ValidateState checks the callback state against the session nonce.
func (a *GoogleAuthenticator) ValidateState(r *http.Request, state string) bool {
	if state == "" {
		return false
	}
	session, err := a.store.Get(r, SessionName)
	if err != nil {
		return false
	}
	saved, ok := session.Values[stateKey].(string)
	return ok && saved == state
}

// Exchange trades the authorization code for a token and fetches the user info.
func (a *GoogleAuthenticator) Exchange(ctx context.Context, code string) (*GoogleUser, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	client := a.config.Client(ctx, token)
	resp, err := client.Get(userInfoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var user GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	if user.Email == "" {
		return nil, fmt.Errorf("userinfo response missing email")
	}

	return &user, nil
}
