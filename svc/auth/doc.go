// Package auth authenticates API clients.
//
// Two flows are supported. Login checks a username and password against the
// user store and issues a signed bearer token. Every protected request then
// presents that token; Middleware verifies it, resolves its subject to a live
// user and stores the user's Profile in the request context.
//
// Both flows go through a Strategy, selected by the shape of the presented
// Credentials:
//
//	profile, err := svc.Authenticate(ctx, auth.PasswordCredentials{Username: "moviefan", Password: "secret"})
//	profile, err := svc.Authenticate(ctx, auth.BearerCredentials{Token: token})
//
// Login never reveals whether the username or the password was wrong, and
// costs one bcrypt comparison in both cases. Token failures are reported to
// clients as a bare 401.
//
// The service also orchestrates the account operations that must pass through
// the password hasher or the store: registration, profile updates, favorites
// and account deletion.
package auth
