package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/99designs/keyring"
)

const (
	serviceName = "storycrafter"
	tokenKey    = "token"
)

// TokenStore persists the session's bearer token between runs.
type TokenStore interface {
	LoadToken() (string, error)
	SaveToken(token string) error
	ClearToken() error
}

// KeyringConfig selects the keyring backend. Backend "file" forces the encrypted file
// backend; anything else lets the OS keychain win and only falls back to the file backend
// when a password is configured.
type KeyringConfig struct {
	Backend  string
	Dir      string
	Password string
}

// OpenKeyring opens the keyring holding the session token.
func OpenKeyring(cfg KeyringConfig) (keyring.Keyring, error) {
	dir := cfg.Dir
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(configDir, serviceName, "keyring")
	}

	kc := keyring.Config{
		ServiceName:              serviceName,
		KeychainTrustApplication: true,
		FileDir:                  dir,
		FilePasswordFunc:         keyring.FixedStringPrompt(cfg.Password),
	}
	switch {
	case cfg.Backend == "file":
		kc.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	case cfg.Password == "":
		for _, b := range keyring.AvailableBackends() {
			if b != keyring.FileBackend {
				kc.AllowedBackends = append(kc.AllowedBackends, b)
			}
		}
	}

	ring, err := keyring.Open(kc)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return ring, nil
}

// KeyringService is the TokenStore backed by a keyring.
type KeyringService struct {
	ring keyring.Keyring
}

var _ TokenStore = (*KeyringService)(nil)

func NewKeyringService(ring keyring.Keyring) *KeyringService {
	return &KeyringService{ring: ring}
}

// LoadToken returns "" when no token is stored.
func (s *KeyringService) LoadToken() (string, error) {
	item, err := s.ring.Get(tokenKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return string(item.Data), nil
}

func (s *KeyringService) SaveToken(token string) error {
	if token == "" {
		return errors.New("token is empty")
	}
	return s.ring.Set(keyring.Item{
		Key:         tokenKey,
		Data:        []byte(token),
		Label:       "StoryCrafter session",
		Description: "Bearer token for the StoryCrafter API",
	})
}

// ClearToken removes the stored token. Removing a missing token is not an error.
func (s *KeyringService) ClearToken() error {
	err := s.ring.Remove(tokenKey)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
