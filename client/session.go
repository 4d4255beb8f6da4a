package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"jobboard/internal/auth"
)

// ErrInvalidLogin is returned when neither the seed table nor the backend
// accepts the credentials.
var ErrInvalidLogin = errors.New("invalid username or password")

// Seed accounts let the SDK run without a backing service. Passwords are
// the documented demo values; only their bcrypt hashes are held in memory
// and the hash never leaves this package.
type seedAccount struct {
	User         User
	passwordHash string
}

var (
	seedOnce     sync.Once
	seedAccounts []seedAccount
)

func seedTable() []seedAccount {
	seedOnce.Do(func() {
		demo := []struct {
			user     User
			password string
		}{
			{
				user: User{
					ID:        "1",
					Username:  "muser",
					Email:     "muser@example.com",
					UserType:  RoleSeeker,
					CreatedAt: fixtureTime("2023-01-15T00:00:00Z"),
				},
				password: "muser",
			},
			{
				user: User{
					ID:        "2",
					Username:  "mvc",
					Email:     "mvc@example.com",
					UserType:  RoleEmployer,
					CreatedAt: fixtureTime("2023-01-20T00:00:00Z"),
				},
				password: "mvc",
			},
		}
		for _, d := range demo {
			hash, err := auth.HashPassword(d.password)
			if err != nil {
				panic("failed to hash seed password: " + err.Error())
			}
			seedAccounts = append(seedAccounts, seedAccount{User: d.user, passwordHash: hash})
		}
	})
	return seedAccounts
}

type storedSession struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

type registerRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	UserType UserRole `json:"userType"`
}

type SessionOptions struct {
	// Path of the session slot file. Defaults to
	// <user config dir>/jobboard/session.json.
	Path string
}

// Session resolves and persists the current identity. The resolved user is
// a value handed to operations that need an actor, not ambient state.
type Session struct {
	client *Client
	path   string
}

func NewSession(c *Client, opts *SessionOptions) (*Session, error) {
	path := ""
	if opts != nil {
		path = opts.Path
	}
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(configDir, "jobboard", "session.json")
	}

	return &Session{
		client: c,
		path:   path,
	}, nil
}

// Login checks the seed table first; on a miss it falls through to the
// backend. A backend failure is reported as a failure, never papered over
// with fixture data: unlike list reads, a wrong login must be visible.
// The persisted record never contains the credential.
func (s *Session) Login(ctx context.Context, username, password string) (*User, error) {
	for _, acc := range seedTable() {
		if acc.User.Username != username {
			continue
		}
		if !auth.CheckPasswordHash(password, acc.passwordHash) {
			break
		}
		user := acc.User
		if err := s.persist(storedSession{User: user}); err != nil {
			return nil, err
		}
		return &user, nil
	}

	if s.client.mode == ModeFixture {
		return nil, ErrInvalidLogin
	}

	var resp loginResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/auth/login", loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, ErrInvalidLogin
		}
		return nil, err
	}

	s.client.SetToken(resp.AccessToken)
	if err := s.persist(storedSession{User: resp.User, AccessToken: resp.AccessToken}); err != nil {
		return nil, err
	}
	user := resp.User
	return &user, nil
}

// Register always goes to the backend; there is no seed-table path for
// creating accounts.
func (s *Session) Register(ctx context.Context, username, email, password string, role UserRole) error {
	return s.client.doJSON(ctx, http.MethodPost, "/auth/register", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
		UserType: role,
	}, nil)
}

// Current loads the persisted identity, or nil when nobody is logged in.
func (s *Session) Current() (*User, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var stored storedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}

	if stored.AccessToken != "" {
		s.client.SetToken(stored.AccessToken)
	}
	user := stored.User
	return &user, nil
}

// Logout clears the persisted slot and the client token.
func (s *Session) Logout() error {
	s.client.SetToken("")
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Session) persist(stored storedSession) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
