package ports

// IdentityProvider resolves the user the client acts on behalf of.
type IdentityProvider interface {
	UserID() string
}
