package model

// TokenGenerator produces unguessable opaque session tokens.
type TokenGenerator interface {
	Generate() (string, error)
}
