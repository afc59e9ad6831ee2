/*
Package accountsdk provides a client SDK for the accounts service, and the
wire types the service itself writes.

# Client vs Session

  - Client: health checks, registration, login, token refresh
  - Session: bearer authenticated profile and listing operations

Create a Client, then sign in to get a Session:

	client := accountsdk.NewClient("http://localhost:8080")

	health, err := client.GetReadiness(ctx)

	session, err := client.AuthenticateWithPassword(ctx, "john@example.com", "secret")

	me, err := session.Me(ctx)

	page, err := session.ListUsers(ctx, accountsdk.ListUsersParams{
		Limit:  20,
		SortBy: "name",
	})

A Session that gets a 401 exchanges its refresh token for a new pair and
retries the request once.

# Errors

Non-2xx responses are returned as *APIError:

	_, err := client.Login(ctx, req)
	var apiErr *accountsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == accountsdk.ErrorCodeUnauthorized {
		// bad credentials or inactive account
	}
*/
package accountsdk
