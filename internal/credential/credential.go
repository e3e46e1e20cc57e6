// Package credential manages the single durable slot holding the bearer
// token that proves an authenticated session to the backend.
package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DefaultTTL is the advisory client-side lifetime stamped on a saved token.
// It is a hint to stop sending the token; only the backend's 401 response is
// authoritative about validity.
const DefaultTTL = 30 * time.Minute

// Credential is an opaque bearer token with its advisory expiry.
type Credential struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the credential's advisory lifetime has passed.
func (c *Credential) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// Store persists at most one Credential in a file. Writes are
// last-write-wins; saving replaces any prior credential atomically.
type Store struct {
	path string
	ttl  time.Duration
	now  func() time.Time
}

// NewStore creates a Store backed by the file at path. A zero ttl falls
// back to DefaultTTL.
func NewStore(path string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{path: path, ttl: ttl, now: time.Now}
}

// DefaultPath returns the per-user location of the credential file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "futdash", "credential.json"), nil
}

// Save stores token with an expiry of now plus the store's TTL, replacing
// any existing credential. The file is written with owner-only permissions
// via a temp file and rename so readers never observe a partial write.
func (s *Store) Save(token string) (*Credential, error) {
	cred := &Credential{
		Token:     token,
		ExpiresAt: s.now().Add(s.ttl),
	}

	data, err := json.Marshal(cred)
	if err != nil {
		return nil, fmt.Errorf("encoding credential: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating credential dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "credential-*.json")
	if err != nil {
		return nil, fmt.Errorf("creating temp credential file: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, fmt.Errorf("setting credential file mode: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, fmt.Errorf("writing credential: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("closing credential file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("replacing credential file: %w", err)
	}

	return cred, nil
}

// Load returns the stored credential, or nil when the slot is empty. A
// credential past its advisory expiry is discarded and reported as absent.
// A corrupt file is treated the same way rather than failing every caller.
func (s *Store) Load() (*Credential, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading credential: %w", err)
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil || cred.Token == "" {
		_ = s.Clear()
		return nil, nil
	}

	if cred.Expired(s.now()) {
		if err := s.Clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &cred, nil
}

// Clear empties the slot. Clearing an already-empty slot is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing credential: %w", err)
	}
	return nil
}
