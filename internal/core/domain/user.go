package domain

// User is an admin account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           string
	Username     string
	PasswordHash string
}
