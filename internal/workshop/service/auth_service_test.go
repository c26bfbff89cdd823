package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robomate/servicedesk/internal/config"
	"github.com/robomate/servicedesk/internal/workshop/repository"
	"github.com/robomate/servicedesk/internal/workshop/testutil"
)

func setupAuthService(t *testing.T) (*AuthService, *repository.Repositories) {
	t.Helper()
	repos := testutil.SetupRepos(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = testutil.JWTSecret
	cfg.JWT.AccessTokenExpire = 2 * time.Hour
	cfg.JWT.RefreshTokenExpire = 7 * 24 * time.Hour
	cfg.JWT.Issuer = "robomate-servicedesk"
	return NewAuthService(repos.Users, nil, cfg), repos
}

func TestLoginBootstrapAdmin(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, pair, err := svc.Login(context.Background(), repository.BootstrapAdminEmail, repository.BootstrapAdminPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !user.IsAdmin {
		t.Error("bootstrap account must be an administrator")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Error("login should issue both tokens")
	}
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	svc, _ := setupAuthService(t)

	if _, _, err := svc.Login(context.Background(), "JEFF@Robomate.CO.NZ", repository.BootstrapAdminPassword); err != nil {
		t.Errorf("email match should be case-insensitive: %v", err)
	}
}

func TestLoginPasswordExact(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, _, err := svc.Login(context.Background(), repository.BootstrapAdminEmail, "LUBA1234")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("password match must be exact, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, _, err := svc.Login(context.Background(), "nobody@robomate.co.nz", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	user, pair, err := svc.Register(ctx, "sam@robomate.co.nz", "secret99")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.IsAdmin {
		t.Error("registered accounts must never be administrators")
	}
	if pair.AccessToken == "" {
		t.Error("registration should log the account in")
	}

	if _, _, err := svc.Login(ctx, "sam@robomate.co.nz", "secret99"); err != nil {
		t.Errorf("fresh account should be able to log in: %v", err)
	}
}

func TestRegisterRejectsForeignDomain(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, _, err := svc.Register(context.Background(), "intruder@gmail.com", "secret99")
	if !errors.Is(err, ErrEmailDomain) {
		t.Errorf("expected ErrEmailDomain, got %v", err)
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, _, err := svc.Register(context.Background(), "Jeff@robomate.co.nz", "another")
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists for existing email (any case), got %v", err)
	}
}

func TestListUsersBlanksPasswords(t *testing.T) {
	svc, _ := setupAuthService(t)

	for _, u := range svc.ListUsers(context.Background()) {
		if u.Password != "" {
			t.Errorf("user %s listed with password", u.Email)
		}
	}
}

func TestUpdatePasswordNonAdminNoOp(t *testing.T) {
	svc, repos := setupAuthService(t)
	ctx := context.Background()

	if err := svc.UpdatePassword(ctx, technician(), repository.BootstrapAdminEmail, "hacked"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	stored, err := repos.Users.FindByEmail(ctx, repository.BootstrapAdminEmail)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if stored.Password != repository.BootstrapAdminPassword {
		t.Error("non-admin password reset must be a no-op")
	}

	if err := svc.UpdatePassword(ctx, admin(), repository.BootstrapAdminEmail, "newpass1"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	stored, _ = repos.Users.FindByEmail(ctx, repository.BootstrapAdminEmail)
	if stored.Password != "newpass1" {
		t.Error("admin password reset should take effect")
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	_, pair, err := svc.Login(ctx, repository.BootstrapAdminEmail, repository.BootstrapAdminPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.RefreshToken(ctx, pair.AccessToken); err == nil {
		t.Error("an access token must not be accepted as a refresh token")
	}
	if _, err := svc.RefreshToken(ctx, "not-a-token"); err == nil {
		t.Error("garbage must not be accepted as a refresh token")
	}
}
