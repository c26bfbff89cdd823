package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/robomate/servicedesk/internal/workshop/entity"
)

// PartRepository holds the spare part catalog. Like the record
// collection, the catalog lives in memory and is fully re-persisted on
// every change.
type PartRepository struct {
	store DocumentStore

	mu    sync.RWMutex
	parts []entity.Part
}

func NewPartRepository(store DocumentStore) *PartRepository {
	return &PartRepository{store: store}
}

// Init loads the persisted catalog, installing the factory catalog when
// nothing has been persisted yet.
func (r *PartRepository) Init(ctx context.Context) error {
	var parts []entity.Part
	found, err := r.store.Load(ctx, KeyParts, &parts)
	if err != nil {
		return fmt.Errorf("load parts: %w", err)
	}
	if !found {
		parts = append(parts, entity.DefaultSpareParts...)
		if err := r.store.Save(ctx, KeyParts, parts); err != nil {
			return fmt.Errorf("seed parts: %w", err)
		}
	}
	r.mu.Lock()
	r.parts = parts
	r.mu.Unlock()
	return nil
}

// List returns a copy of the catalog.
func (r *PartRepository) List(ctx context.Context) []entity.Part {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Part, len(r.parts))
	copy(out, r.parts)
	return out
}

// Index returns a price/name lookup over the current catalog.
func (r *PartRepository) Index(ctx context.Context) entity.PartIndex {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return entity.NewPartIndex(r.parts)
}

// FindByID returns the part with the given id.
func (r *PartRepository) FindByID(ctx context.Context, id string) (*entity.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.parts {
		if r.parts[i].ID == id {
			p := r.parts[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a new part to the catalog.
func (r *PartRepository) Create(ctx context.Context, part *entity.Part) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.parts {
		if r.parts[i].ID == part.ID {
			return fmt.Errorf("part %s already exists", part.ID)
		}
	}
	r.parts = append(r.parts, *part)
	return r.persistLocked(ctx)
}

// Update replaces the stored part with a matching id.
func (r *PartRepository) Update(ctx context.Context, part *entity.Part) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.parts {
		if r.parts[i].ID == part.ID {
			r.parts[i] = *part
			return r.persistLocked(ctx)
		}
	}
	return ErrNotFound
}

// Delete removes the part with the given id. Repair records referencing
// the part keep their part actions; costing treats the dangling
// reference as zero.
func (r *PartRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.parts {
		if r.parts[i].ID == id {
			r.parts = append(r.parts[:i], r.parts[i+1:]...)
			return r.persistLocked(ctx)
		}
	}
	return nil
}

// ReplaceAll swaps the whole catalog, used by the bulk import.
func (r *PartRepository) ReplaceAll(ctx context.Context, parts []entity.Part) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parts = append([]entity.Part{}, parts...)
	return r.persistLocked(ctx)
}

func (r *PartRepository) persistLocked(ctx context.Context) error {
	if err := r.store.Save(ctx, KeyParts, r.parts); err != nil {
		return fmt.Errorf("persist parts: %w", err)
	}
	return nil
}
