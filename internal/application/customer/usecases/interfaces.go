package usecases

// PasswordHasher abstracts password hashing so the use cases stay free
// of bcrypt specifics.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs an access token for the given customer id.
type TokenIssuer interface {
	Generate(customerID uint) (string, error)
}
