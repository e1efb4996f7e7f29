package models

// Teacher is the identity returned by the sign-up service on login.
// Teachers are the only actors allowed to modify rosters.
type Teacher struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Credentials are the basic-auth credentials a teacher logged in with.
// The secret is kept in memory for the lifetime of the session because
// the upstream service authenticates every mutation with basic auth;
// there is no token exchange to trade it for.
type Credentials struct {
	Username string
	Secret   string
}
