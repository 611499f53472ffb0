package mocks

import "sync"

// TokenStoreMock keeps the token in memory and records how often it was cleared.
type TokenStoreMock struct {
	mu      sync.Mutex
	Token   string
	Cleared int

	LoadErr  error
	SaveErr  error
	ClearErr error
}

func (m *TokenStoreMock) LoadToken() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return "", m.LoadErr
	}
	return m.Token, nil
}

func (m *TokenStoreMock) SaveToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Token = token
	return nil
}

func (m *TokenStoreMock) ClearToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Cleared++
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Token = ""
	return nil
}

func (m *TokenStoreMock) Stored() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Token
}
