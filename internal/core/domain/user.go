package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserRole enumerates supported account roles.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleDonor   UserRole = "donor"
	RoleAdmin   UserRole = "admin"
)

// ValidRole reports whether the role is one of the assignable roles. Admins
// are promoted out of band, never through registration.
func ValidRole(r UserRole) bool {
	return r == RoleStudent || r == RoleDonor
}

// User represents a registered account. Donor lifetime aggregates track the
// gross amount of completed donations; whether refunds reverse them is a
// deployment decision, see configs.Donation.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	Role         UserRole
	AvatarURL    *string
	Verified     bool

	// Donor aggregates, gross minor units.
	TotalDonations int64
	DonationCount  int64

	LastLogin *time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// SetPassword hashes the plaintext password with bcrypt.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (u User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
