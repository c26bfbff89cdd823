package repository

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories is the set of collection repositories backing the workshop.
type Repositories struct {
	Records *RecordRepository
	Parts   *PartRepository
	Users   *UserRepository
}

// NewRepositories wires the collection repositories over a shared
// document store.
func NewRepositories(store DocumentStore) *Repositories {
	return &Repositories{
		Records: NewRecordRepository(store),
		Parts:   NewPartRepository(store),
		Users:   NewUserRepository(store),
	}
}

// Init loads every collection from the store, seeding defaults where
// nothing has been persisted yet. Must be called before serving.
func (r *Repositories) Init(ctx context.Context) error {
	if err := r.Records.Init(ctx); err != nil {
		return err
	}
	if err := r.Parts.Init(ctx); err != nil {
		return err
	}
	return r.Users.Init(ctx)
}
