package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/robomate/servicedesk/internal/config"
	"github.com/robomate/servicedesk/internal/workshop/entity"
	"github.com/robomate/servicedesk/internal/workshop/repository"
)

// Registration is restricted to the organization's email domain.
const AllowedEmailDomain = "@robomate.co.nz"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("an account with this email already exists")
	ErrEmailDomain        = errors.New("registration is restricted to " + AllowedEmailDomain + " email addresses")
)

// TokenPair is the session material returned on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthService handles login, registration and account administration.
type AuthService struct {
	userRepo *repository.UserRepository
	rdb      *redis.Client
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, rdb: rdb, cfg: cfg}
}

// Login authenticates by case-insensitive email match and exact
// password match.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, *TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if user.Password != password {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Register creates a technician account. Existing emails are rejected,
// and only organizational addresses may register. New accounts are
// never administrators.
func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.User, *TokenPair, error) {
	if !strings.HasSuffix(strings.ToLower(email), AllowedEmailDomain) {
		return nil, nil, ErrEmailDomain
	}
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, nil, ErrEmailExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, err
	}

	user := &entity.User{Email: email, Password: password, IsAdmin: false}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// ListUsers returns all accounts with passwords blanked.
func (s *AuthService) ListUsers(ctx context.Context) []entity.User {
	users := s.userRepo.List(ctx)
	for i := range users {
		users[i].Password = ""
	}
	return users
}

// UpdatePassword resets another account's password. Only administrators
// may do this; for anyone else it is a silent no-op.
func (s *AuthService) UpdatePassword(ctx context.Context, actor *entity.User, email, newPassword string) error {
	if !isAdmin(actor) {
		return nil
	}
	return s.userRepo.UpdatePassword(ctx, email, newPassword)
}

// GetUser resolves an account by email.
func (s *AuthService) GetUser(ctx context.Context, email string) (*entity.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// RefreshToken rotates a refresh token for a new token pair.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims["type"] != "refresh" {
		return nil, fmt.Errorf("invalid token type")
	}

	if s.rdb == nil {
		return nil, fmt.Errorf("refresh token expired or invalid")
	}

	jti, _ := claims["jti"].(string)
	email, err := s.rdb.Get(ctx, "token:refresh:"+jti).Result()
	if err != nil {
		return nil, fmt.Errorf("refresh token expired or invalid")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	s.rdb.Del(ctx, "token:refresh:"+jti)

	return s.generateTokenPair(ctx, user)
}

func (s *AuthService) generateTokenPair(ctx context.Context, user *entity.User) (*TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"sub":   user.Email,
		"email": user.Email,
		"name":  user.TechnicianName(),
		"admin": user.IsAdmin,
		"iss":   s.cfg.JWT.Issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.JWT.AccessTokenExpire).Unix(),
		"jti":   uuid.New().String(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshJTI := uuid.New().String()
	refreshClaims := jwt.MapClaims{
		"sub":  user.Email,
		"type": "refresh",
		"iss":  s.cfg.JWT.Issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.JWT.RefreshTokenExpire).Unix(),
		"jti":  refreshJTI,
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	// Redis is optional in tests and demo mode; without it refresh
	// tokens simply cannot be redeemed.
	if s.rdb != nil {
		s.rdb.Set(ctx, "token:refresh:"+refreshJTI, user.Email, s.cfg.JWT.RefreshTokenExpire)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.cfg.JWT.AccessTokenExpire.Seconds()),
	}, nil
}
