package model

// Session is the authenticated principal decoded from a bearer token.
//
// ID is the account's durable id for the master and the secret id for a
// regular user, mirroring what the login response returns for each role.
type Session struct {
	Role     Role
	ID       string
	Username string
}

// LoginRequest is the discriminated login payload. Type selects the branch:
// "master" uses Email+Password, "user" uses Email+SecretID.
type LoginRequest struct {
	Type     string `json:"type"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	SecretID string `json:"secretId,omitempty"`
}

// LoginResult is the successful login response. ID is only set for regular
// users and repeats their secret id.
type LoginResult struct {
	Token    string `json:"token"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
	ID       string `json:"id,omitempty"`
}

// IsMaster reports whether the session belongs to the master admin.
func (s Session) IsMaster() bool {
	return s.Role == RoleMaster
}

// CanManage reports whether the session may mutate the profile owned by
// userID: the master can manage any profile, a user only their own.
func (s Session) CanManage(userID string) bool {
	return s.IsMaster() || (s.Role == RoleUser && s.ID == userID)
}
