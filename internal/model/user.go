package model

// Role distinguishes the two client classes. The role is declared by
// the client itself when it connects and is not verified server-side;
// see the trust-boundary note on hub.Hub.
type Role string

const (
	RoleMobile   Role = "mobile"
	RoleDispatch Role = "dispatch"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleMobile || r == RoleDispatch
}

// User is the identity produced by a successful login. It carries no
// role on purpose: the role comes from the user-connected frame.
type User struct {
	Username string `json:"username"`
}
