package accountsdk

import "time"

// ============================================================================
// Accounts
// ============================================================================

// User is the public projection of an account. It never carries the
// password hash.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateUserRequest changes the caller's profile. Omitted or empty fields
// are left alone.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// ListUsersParams are the query parameters of GET /users. Zero values are
// omitted and the server applies its defaults.
type ListUsersParams struct {
	Page      int
	Limit     int
	SortBy    string // createdAt, updatedAt, name, email, isActive
	SortOrder string // ASC or DESC
	Search    string
	IsActive  *bool
}

// PageMeta describes where a page sits within the full result set.
type PageMeta struct {
	TotalItems   int  `json:"totalItems"`
	ItemCount    int  `json:"itemCount"`
	ItemsPerPage int  `json:"itemsPerPage"`
	TotalPages   int  `json:"totalPages"`
	CurrentPage  int  `json:"currentPage"`
	HasNext      bool `json:"hasNext"`
	HasPrevious  bool `json:"hasPrevious"`
}

// ListUsersResponse is one page of users.
type ListUsersResponse struct {
	Data []User   `json:"data"`
	Meta PageMeta `json:"meta"`
}

// ============================================================================
// Authentication
// ============================================================================

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ============================================================================
// Errors and health
// ============================================================================

// ErrorResponse is the body of every non-2xx API response. Request shape
// errors carry only Error; domain errors carry the kind in Error and the
// detail in Message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains the status of individual components (only in /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
