package ports

// PasswordHasher applies the salted one-way transform for stored secrets.
// Compare returns domain.ErrPasswordMismatch for a normal miss and wraps
// domain.ErrCredentialStore when the stored hash itself is malformed.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs and validates self-contained bearer tokens. Validation
// is fully stateless; rejection reasons map onto the domain token sentinels.
type TokenIssuer interface {
	Issue(subject string) (string, error)
	Validate(token string) (string, error)
}
