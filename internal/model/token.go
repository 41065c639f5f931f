package model

// TokenManager signs and verifies bearer session tokens.
type TokenManager interface {
	Generate(session Session) (string, error)
	Parse(token string) (Session, error)
}
