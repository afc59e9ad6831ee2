package accountsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Session represents an authenticated caller. A request that comes back 401
// is retried once after exchanging the refresh token for a new pair.
type Session struct {
	client *Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// AccessToken returns the current access token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Refresh replaces the session's tokens with a freshly issued pair.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *Session) refreshLocked(ctx context.Context) error {
	if s.refreshToken == "" {
		return errors.New("no refresh token available")
	}

	res, err := s.client.Refresh(ctx, s.refreshToken)
	if err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}

	s.accessToken = res.AccessToken
	s.refreshToken = res.RefreshToken
	return nil
}

// doAuthRequest sends a bearer request and decodes a response with status
// want into target.
func (s *Session) doAuthRequest(ctx context.Context, method, path string, payload, target any, want int) error {
	token := s.AccessToken()

	resp, err := s.client.doRequest(ctx, method, s.client.url(path), token, payload)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && s.RefreshToken() != "" {
		resp.Body.Close()

		if err := s.refreshIfStale(ctx, token); err != nil {
			return err
		}

		resp, err = s.client.doRequest(ctx, method, s.client.url(path), s.AccessToken(), payload)
		if err != nil {
			return err
		}
	}

	return decodeJSON(resp, target, want)
}

// refreshIfStale refreshes unless another goroutine already replaced stale.
func (s *Session) refreshIfStale(ctx context.Context, stale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != stale {
		return nil
	}
	return s.refreshLocked(ctx)
}
