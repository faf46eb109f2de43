package adapter

// PasswordHasher guards staff credentials at rest.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Matches reports whether password is the one behind hash.
	Matches(hash, password string) bool

	// CheckPolicy rejects passwords the portal does not accept for staff accounts.
	CheckPolicy(password string) error
}
