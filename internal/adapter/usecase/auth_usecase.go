package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"lifted/internal/core/domain"
	"lifted/internal/core/port"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^(\+254|0)[0-9]{9}$`)
)

// AuthUseCase implements port.AuthUseCase on top of the user repository.
type AuthUseCase struct {
	users port.UserRepository
}

// NewAuthUseCase creates a new usecase with the provided repository.
func NewAuthUseCase(users port.UserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

// Register validates the input, hashes the password and creates the account.
func (u *AuthUseCase) Register(ctx context.Context, in port.RegisterInput) (*domain.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	switch {
	case in.FirstName == "" || in.LastName == "":
		return nil, fmt.Errorf("%w: first and last name are required", port.ErrInvalidInput)
	case !emailPattern.MatchString(in.Email):
		return nil, fmt.Errorf("%w: invalid email", port.ErrInvalidInput)
	case len(in.Password) < 8:
		return nil, fmt.Errorf("%w: password must be at least 8 characters", port.ErrInvalidInput)
	case !phonePattern.MatchString(in.Phone):
		return nil, fmt.Errorf("%w: invalid phone number", port.ErrInvalidInput)
	}
	if in.Role == "" {
		in.Role = domain.RoleDonor
	}
	if !domain.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: invalid role %q", port.ErrInvalidInput, in.Role)
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      in.Role,
		IsActive:  true,
	}
	if err := user.SetPassword(in.Password); err != nil {
		return nil, err
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and stamps the last login time. Unknown email
// and wrong password are indistinguishable to the caller.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, port.ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return nil, port.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, port.ErrAccountDisabled
	}

	now := time.Now()
	if err := u.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now
	return user, nil
}

// GetUser fetches a user profile by id.
func (u *AuthUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return u.users.GetByID(ctx, id)
}

// UpdateProfile validates and persists the self-service profile fields.
// Email and role stay as they are; those changes go through support.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, userID string, in port.ProfileInput) (*domain.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	switch {
	case in.FirstName == "" || in.LastName == "":
		return nil, fmt.Errorf("%w: first and last name are required", port.ErrInvalidInput)
	case !phonePattern.MatchString(in.Phone):
		return nil, fmt.Errorf("%w: invalid phone number", port.ErrInvalidInput)
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Phone = in.Phone
	user.AvatarURL = in.AvatarURL
	if err := u.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password and stores the new hash.
func (u *AuthUseCase) ChangePassword(ctx context.Context, userID, current, next string) error {
	if len(next) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", port.ErrInvalidInput)
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.CheckPassword(current) {
		return port.ErrInvalidCredentials
	}
	if err := user.SetPassword(next); err != nil {
		return err
	}
	return u.users.UpdatePassword(ctx, userID, user.PasswordHash)
}
