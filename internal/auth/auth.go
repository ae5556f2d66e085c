package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"ocst/internal/model"
)

// ErrInvalidCredentials is returned for any failed login. The message
// deliberately does not say whether the username or the password was
// wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Authenticator validates login credentials. The result carries no
// role: clients declare mobile or dispatch themselves in the
// user-connected frame and the hub trusts that declaration.
type Authenticator interface {
	Login(username, password string) (model.User, error)
}

// Static checks credentials against a fixed username->password table.
type Static struct {
	users map[string]string
}

// NewStatic builds an authenticator from a username->password map.
func NewStatic(users map[string]string) *Static {
	return &Static{users: users}
}

// ParseUsers parses the AUTH_USERS format: comma-separated "user:pass"
// pairs. Malformed pairs are skipped.
func ParseUsers(s string) map[string]string {
	users := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		name, pass, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || name == "" || pass == "" {
			continue
		}
		users[name] = pass
	}
	return users
}

// Login implements Authenticator.
func (a *Static) Login(username, password string) (model.User, error) {
	want, ok := a.users[username]
	if !ok || subtle.ConstantTimeCompare([]byte(want), []byte(password)) != 1 {
		return model.User{}, ErrInvalidCredentials
	}
	return model.User{Username: username}, nil
}
