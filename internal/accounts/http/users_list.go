package http

import (
	"net/http"
	"net/url"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
)

type ListUsersHandler struct {
	AccountService *service.AccountService
	Errors         ErrorWriter
}

// ServeHTTP returns one page of users.
//
//	@Summary		List users
//	@Description	Returns a page of users. Out of range page and limit values are clamped, unknown sort fields fall back to createdAt.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page		query		int							false	"Page number (1-based)"		default(1)
//	@Param			limit		query		int							false	"Items per page (max 100)"	default(10)
//	@Param			sortBy		query		string						false	"Sort field"				Enums(createdAt, updatedAt, name, email, isActive)
//	@Param			sortOrder	query		string						false	"Sort direction"			Enums(ASC, DESC)
//	@Param			search		query		string						false	"Substring match on name or email"
//	@Param			isActive	query		bool						false	"Filter by active flag"
//	@Success		200			{object}	accountsdk.ListUsersResponse	"Page of users"
//	@Failure		401			{object}	accountsdk.ErrorResponse		"Invalid or missing access token"
//	@Router			/api/v1/users [get].
func (h *ListUsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := domain.ParseListQuery(queryGetter(r.URL.Query()))

	page, err := h.AccountService.List(r.Context(), q)
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	users := make([]accountsdk.User, len(page.Data))
	for i, a := range page.Data {
		users[i] = toUser(a)
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.ListUsersResponse{
		Data: users,
		Meta: accountsdk.PageMeta{
			TotalItems:   page.Meta.TotalItems,
			ItemCount:    page.Meta.ItemCount,
			ItemsPerPage: page.Meta.ItemsPerPage,
			TotalPages:   page.Meta.TotalPages,
			CurrentPage:  page.Meta.CurrentPage,
			HasNext:      page.Meta.HasNext,
			HasPrevious:  page.Meta.HasPrevious,
		},
	})
}

func queryGetter(v url.Values) func(string) (string, bool) {
	return func(key string) (string, bool) {
		vals, ok := v[key]
		if !ok || len(vals) == 0 {
			return "", false
		}
		return vals[0], true
	}
}
