package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/robomate/servicedesk/internal/workshop/entity"
)

// Bootstrap administrator installed on first run. All other accounts are
// regular technicians.
const (
	BootstrapAdminEmail    = "jeff@robomate.co.nz"
	BootstrapAdminPassword = "luba1234"
)

// UserRepository holds the workshop accounts, persisted on every write.
type UserRepository struct {
	store DocumentStore

	mu    sync.RWMutex
	users []entity.User
}

func NewUserRepository(store DocumentStore) *UserRepository {
	return &UserRepository{store: store}
}

// Init loads persisted accounts and unconditionally ensures the
// bootstrap administrator exists, inserting it if missing.
func (r *UserRepository) Init(ctx context.Context) error {
	var users []entity.User
	if _, err := r.store.Load(ctx, KeyUsers, &users); err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	hasAdmin := false
	for i := range users {
		if strings.EqualFold(users[i].Email, BootstrapAdminEmail) {
			hasAdmin = true
			break
		}
	}
	if !hasAdmin {
		users = append(users, entity.User{
			Email:    BootstrapAdminEmail,
			Password: BootstrapAdminPassword,
			IsAdmin:  true,
		})
		if err := r.store.Save(ctx, KeyUsers, users); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	r.mu.Lock()
	r.users = users
	r.mu.Unlock()
	return nil
}

// List returns a copy of all accounts.
func (r *UserRepository) List(ctx context.Context) []entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.User, len(r.users))
	copy(out, r.users)
	return out
}

// FindByEmail looks an account up by case-insensitive email match.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Create registers a new account. The caller is responsible for
// rejecting duplicates beforehand; this re-checks under the lock.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, user.Email) {
			return fmt.Errorf("user %s already exists", user.Email)
		}
	}
	r.users = append(r.users, *user)
	return r.persistLocked(ctx)
}

// UpdatePassword sets a new password on the account with the given
// email. Unknown emails are reported as ErrNotFound.
func (r *UserRepository) UpdatePassword(ctx context.Context, email, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			r.users[i].Password = password
			return r.persistLocked(ctx)
		}
	}
	return ErrNotFound
}

func (r *UserRepository) persistLocked(ctx context.Context) error {
	if err := r.store.Save(ctx, KeyUsers, r.users); err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	return nil
}
