package models

// User is the profile attached to an authenticated session.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender,omitempty"`
	Image     string `json:"image"`
}

// FullName returns the display name for the dashboard greeting.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.Username
	}
	return u.FirstName + " " + u.LastName
}

// Credentials is a username/password pair for the upstream login endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the upstream login response: the profile plus an opaque
// bearer token. The client never inspects or validates the token.
type LoginResult struct {
	User
	Token string `json:"token"`
}
