package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"lifted/internal/core/domain"
	"lifted/internal/core/port"
	"lifted/internal/core/port/mocks"
)

func registerInput() port.RegisterInput {
	return port.RegisterInput{
		FirstName: "Wanjiku",
		LastName:  "Kamau",
		Email:     "Wanjiku.Kamau@Example.com",
		Password:  "sufficiently-long",
		Phone:     "+254712345678",
		Role:      domain.RoleStudent,
	}
}

func TestRegister(t *testing.T) {
	users := mocks.NewMockUserRepository(t)

	var stored *domain.User
	users.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(ctx context.Context, u *domain.User) { stored = u }).
		Return(nil)

	svc := NewAuthUseCase(users)
	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Email != "wanjiku.kamau@example.com" {
		t.Fatalf("email should be lowercased, got %s", user.Email)
	}
	if stored == nil || stored.PasswordHash == "" || stored.PasswordHash == "sufficiently-long" {
		t.Fatal("password must be stored hashed")
	}
	if !user.IsActive {
		t.Fatal("new accounts start active")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthUseCase(mocks.NewMockUserRepository(t))

	mutate := []func(*port.RegisterInput){
		func(in *port.RegisterInput) { in.FirstName = "" },
		func(in *port.RegisterInput) { in.Email = "not-an-email" },
		func(in *port.RegisterInput) { in.Password = "short" },
		func(in *port.RegisterInput) { in.Phone = "12345" },
		func(in *port.RegisterInput) { in.Phone = "+14155550100" }, // wrong country
		func(in *port.RegisterInput) { in.Role = domain.RoleAdmin },
	}
	for i, m := range mutate {
		in := registerInput()
		m(&in)
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, port.ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestRegisterDefaultsToDonor(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	users.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	svc := NewAuthUseCase(users)
	in := registerInput()
	in.Role = ""
	user, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Role != domain.RoleDonor {
		t.Fatalf("role: got %s, want donor", user.Role)
	}
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	u := &domain.User{ID: "u1", Email: "user@example.com", IsActive: true}
	if err := u.SetPassword(password); err != nil {
		t.Fatalf("SetPassword error: %v", err)
	}
	return u
}

func TestLogin(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	u := activeUser(t, "sufficiently-long")
	users.EXPECT().GetByEmail(mock.Anything, "user@example.com").Return(u, nil)
	users.EXPECT().UpdateLastLogin(mock.Anything, "u1", mock.AnythingOfType("time.Time")).Return(nil)

	svc := NewAuthUseCase(users)
	got, err := svc.Login(context.Background(), "  USER@example.com ", "sufficiently-long")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if got.LastLogin == nil || time.Since(*got.LastLogin) > time.Minute {
		t.Fatal("last login was not stamped")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	users.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, port.ErrNotFound).Once()
	users.EXPECT().GetByEmail(mock.Anything, "user@example.com").Return(activeUser(t, "right-password"), nil).Once()

	svc := NewAuthUseCase(users)
	_, unknownErr := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, wrongErr := svc.Login(context.Background(), "user@example.com", "wrong-password")

	if !errors.Is(unknownErr, port.ErrInvalidCredentials) || !errors.Is(wrongErr, port.ErrInvalidCredentials) {
		t.Fatalf("both failures must map to ErrInvalidCredentials, got %v and %v", unknownErr, wrongErr)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	u := activeUser(t, "sufficiently-long")
	u.IsActive = false
	users.EXPECT().GetByEmail(mock.Anything, "user@example.com").Return(u, nil)

	svc := NewAuthUseCase(users)
	if _, err := svc.Login(context.Background(), "user@example.com", "sufficiently-long"); !errors.Is(err, port.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	u := activeUser(t, "sufficiently-long")
	u.Email = "user@example.com"
	users.EXPECT().GetByID(mock.Anything, "u1").Return(u, nil)

	var stored *domain.User
	users.EXPECT().
		UpdateProfile(mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(ctx context.Context, user *domain.User) { stored = user }).
		Return(nil)

	avatar := "https://cdn.example.com/a.png"
	svc := NewAuthUseCase(users)
	got, err := svc.UpdateProfile(context.Background(), "u1", port.ProfileInput{
		FirstName: "  Achieng ",
		LastName:  "Odhiambo",
		Phone:     "0712345678",
		AvatarURL: &avatar,
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if got.FirstName != "Achieng" || got.LastName != "Odhiambo" {
		t.Fatalf("names not applied: %s %s", got.FirstName, got.LastName)
	}
	if got.Email != "user@example.com" {
		t.Fatal("email must not change through profile updates")
	}
	if stored == nil || stored.AvatarURL == nil || *stored.AvatarURL != avatar {
		t.Fatal("avatar url was not persisted")
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	svc := NewAuthUseCase(mocks.NewMockUserRepository(t))

	cases := []port.ProfileInput{
		{FirstName: " ", LastName: "Odhiambo", Phone: "0712345678"},
		{FirstName: "Achieng", LastName: "", Phone: "0712345678"},
		{FirstName: "Achieng", LastName: "Odhiambo", Phone: "12345"},
	}
	for i, in := range cases {
		if _, err := svc.UpdateProfile(context.Background(), "u1", in); !errors.Is(err, port.ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestChangePassword(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	u := activeUser(t, "old-password-123")
	users.EXPECT().GetByID(mock.Anything, "u1").Return(u, nil)
	users.EXPECT().UpdatePassword(mock.Anything, "u1", mock.AnythingOfType("string")).Return(nil)

	svc := NewAuthUseCase(users)
	if err := svc.ChangePassword(context.Background(), "u1", "old-password-123", "new-password-456"); err != nil {
		t.Fatalf("ChangePassword error: %v", err)
	}
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	users := mocks.NewMockUserRepository(t)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(activeUser(t, "old-password-123"), nil)

	svc := NewAuthUseCase(users)
	if err := svc.ChangePassword(context.Background(), "u1", "not-the-password", "new-password-456"); !errors.Is(err, port.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
