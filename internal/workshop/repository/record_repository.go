package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/robomate/servicedesk/internal/workshop/entity"
)

// RecordRepository holds the authoritative in-memory repair record
// collection. Every mutation re-persists the whole collection, so the
// durable copy never lags the in-memory one. The slice is kept
// most-recent-first: new records are prepended.
type RecordRepository struct {
	store DocumentStore

	mu      sync.RWMutex
	records []entity.RepairRecord
}

func NewRecordRepository(store DocumentStore) *RecordRepository {
	return &RecordRepository{store: store}
}

// Init loads persisted records, installing the seed jobs when nothing
// has been persisted yet.
func (r *RecordRepository) Init(ctx context.Context) error {
	var records []entity.RepairRecord
	found, err := r.store.Load(ctx, KeyRecords, &records)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	if !found {
		records = entity.SeedRecords()
		if err := r.store.Save(ctx, KeyRecords, records); err != nil {
			return fmt.Errorf("seed records: %w", err)
		}
	}
	r.mu.Lock()
	r.records = records
	r.mu.Unlock()
	return nil
}

// List returns a copy of the collection in display order.
func (r *RecordRepository) List(ctx context.Context) []entity.RepairRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.RepairRecord, len(r.records))
	copy(out, r.records)
	return out
}

// FindByID returns a copy of the record with the given id.
func (r *RecordRepository) FindByID(ctx context.Context, id string) (*entity.RepairRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.records {
		if r.records[i].ID == id {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}

// Upsert updates the record with a matching id in place, or prepends it
// as a new record, then persists the collection.
func (r *RecordRepository) Upsert(ctx context.Context, rec *entity.RepairRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := false
	for i := range r.records {
		if r.records[i].ID == rec.ID {
			r.records[i] = *rec
			replaced = true
			break
		}
	}
	if !replaced {
		r.records = append([]entity.RepairRecord{*rec}, r.records...)
	}
	return r.persistLocked(ctx)
}

// PrependAll inserts imported records ahead of the existing collection,
// preserving their file order, and persists once.
func (r *RecordRepository) PrependAll(ctx context.Context, recs []entity.RepairRecord) error {
	if len(recs) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(append([]entity.RepairRecord{}, recs...), r.records...)
	return r.persistLocked(ctx)
}

// Delete removes the record with the given id. Missing ids are not an
// error; the collection is persisted either way only when changed.
func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return r.persistLocked(ctx)
		}
	}
	return nil
}

// IDs returns the set of record ids currently in the collection.
func (r *RecordRepository) IDs(ctx context.Context) map[string]struct{} {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make(map[string]struct{}, len(r.records))
	for i := range r.records {
		ids[r.records[i].ID] = struct{}{}
	}
	return ids
}

// Count returns the number of records in the collection.
func (r *RecordRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

func (r *RecordRepository) persistLocked(ctx context.Context) error {
	if err := r.store.Save(ctx, KeyRecords, r.records); err != nil {
		return fmt.Errorf("persist records: %w", err)
	}
	return nil
}
