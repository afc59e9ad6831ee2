package accountsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Me returns the authenticated caller's profile.
func (s *Session) Me(ctx context.Context) (*User, error) {
	var user User
	if err := s.doAuthRequest(ctx, http.MethodGet, "/users/me", nil, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe changes the caller's name and/or email.
func (s *Session) UpdateMe(ctx context.Context, req UpdateUserRequest) (*User, error) {
	var user User
	if err := s.doAuthRequest(ctx, http.MethodPut, "/users/me", req, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser returns the profile of the account with id.
func (s *Session) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	path := "/users/" + url.PathEscape(id)
	if err := s.doAuthRequest(ctx, http.MethodGet, path, nil, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns one page of users.
func (s *Session) ListUsers(ctx context.Context, params ListUsersParams) (*ListUsersResponse, error) {
	path := "/users"
	if q := params.Encode(); q != "" {
		path += "?" + q
	}

	var out ListUsersResponse
	if err := s.doAuthRequest(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Encode renders the non-zero parameters as a query string.
func (p ListUsersParams) Encode() string {
	v := url.Values{}
	if p.Page != 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit != 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		v.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		v.Set("sortOrder", p.SortOrder)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.IsActive != nil {
		v.Set("isActive", strconv.FormatBool(*p.IsActive))
	}
	return v.Encode()
}
