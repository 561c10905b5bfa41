package client

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// credentials is what the session persists between runs. Token and
// identity travel together: a file with only one of them is treated
// as corrupt and purged on restore.
type credentials struct {
	Token    string    `json:"token"`
	Identity *Identity `json:"identity"`
}

func (c credentials) complete() bool {
	return c.Token != "" && c.Identity != nil && c.Identity.ID != "" && c.Identity.Role.Valid()
}

// CredentialStore persists the session's token and identity as a unit.
type CredentialStore interface {
	Load() (credentials, error)
	Save(credentials) error
	Clear() error
}

// FileCredentialStore keeps credentials in a single JSON file. Writes
// go through a temp file and rename so a crash never leaves a torn file.
type FileCredentialStore struct {
	Path string
}

func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{Path: path}
}

func (s *FileCredentialStore) Load() (credentials, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return credentials{}, nil
		}
		return credentials{}, err
	}

	var creds credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return credentials{}, err
	}
	return creds, nil
}

func (s *FileCredentialStore) Save(creds credentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}

func (s *FileCredentialStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// SessionStore owns the authenticated session: who is signed in, the
// bearer token backing their calls, and the persisted copy of both.
// It implements TokenSource for the API client.
type SessionStore struct {
	api   *Client
	creds CredentialStore

	mu       sync.Mutex
	gen      uint64
	token    string
	identity *Identity
	loading  bool
}

// NewSessionStore wires a session to its API client and credential
// store, and registers itself as the client's token source.
func NewSessionStore(api *Client, creds CredentialStore) *SessionStore {
	s := &SessionStore{api: api, creds: creds}
	api.SetTokenSource(s)
	return s
}

// Token returns the current bearer token, or "" when signed out.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Current returns a copy of the signed-in identity, or nil.
func (s *SessionStore) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Loading reports whether an authentication call is in flight.
func (s *SessionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Login exchanges credentials for a token and identity. On failure the
// session is left exactly as it was, signed in or not, and the error
// carries KindAuthenticationFailure.
func (s *SessionStore) Login(ctx context.Context, email, password string) (*Identity, error) {
	gen := s.begin()
	defer s.end()

	var out struct {
		Token string    `json:"token"`
		User  *Identity `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := s.api.do(ctx, "POST", "/auth/login", body, &out); err != nil {
		return nil, asAuthFailure(err)
	}

	return s.commit(gen, out.Token, out.User)
}

// Register creates an account and signs it in with the returned token.
func (s *SessionStore) Register(ctx context.Context, draft RegisterDraft) (*Identity, error) {
	gen := s.begin()
	defer s.end()

	var out struct {
		Token string    `json:"token"`
		User  *Identity `json:"user"`
	}
	if err := s.api.do(ctx, "POST", "/auth/register", draft, &out); err != nil {
		return nil, asAuthFailure(err)
	}

	return s.commit(gen, out.Token, out.User)
}

// Logout revokes the token server-side on a best-effort basis, then
// clears local state. Calling it while signed out is a no-op.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return
	}

	// The server call may fail; local sign-out happens regardless.
	_ = s.api.do(ctx, "POST", "/auth/logout", nil, nil)

	s.mu.Lock()
	s.gen++
	s.token = ""
	s.identity = nil
	s.mu.Unlock()
	_ = s.creds.Clear()
}

// Restore rebuilds the session from the credential store at startup.
// Anything short of a complete, well-formed token+identity pair purges
// the remnants and leaves the session empty. Restore never surfaces an
// error to the caller; a failed restore is just a signed-out session.
func (s *SessionStore) Restore() {
	creds, err := s.creds.Load()
	if err != nil || !creds.complete() {
		_ = s.creds.Clear()
		return
	}

	s.mu.Lock()
	s.gen++
	s.token = creds.Token
	s.identity = creds.Identity
	s.mu.Unlock()
}

// begin marks an auth call in flight and returns the generation that
// call belongs to. Overlapping calls are last-writer-wins: a commit or
// failure from a stale generation is dropped.
func (s *SessionStore) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.loading = true
	return s.gen
}

func (s *SessionStore) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *SessionStore) commit(gen uint64, token string, ident *Identity) (*Identity, error) {
	// A 200 without both halves of the pair is a broken server, not a
	// sign-in. The existing session stays as it was.
	if token == "" || ident == nil {
		return nil, &APIError{Kind: KindAuthenticationFailure, Message: "malformed authentication response"}
	}

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return nil, &APIError{Kind: KindAuthenticationFailure, Message: "superseded by a later sign-in"}
	}
	s.token = token
	s.identity = ident
	s.mu.Unlock()

	_ = s.creds.Save(credentials{Token: token, Identity: ident})
	id := *ident
	return &id, nil
}

// asAuthFailure reclassifies any login or register error as an
// authentication failure so callers see one kind for "could not
// sign in", whatever went wrong underneath.
func asAuthFailure(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &APIError{Kind: KindAuthenticationFailure, StatusCode: apiErr.StatusCode, Message: apiErr.Message}
	}
	return &APIError{Kind: KindAuthenticationFailure, Message: err.Error()}
}
