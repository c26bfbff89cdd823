package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/robomate/servicedesk/internal/workshop/entity"
)

func setupRepos(t *testing.T) (*Repositories, DocumentStore) {
	t.Helper()
	store := NewMemoryDocumentStore()
	repos := NewRepositories(store)
	if err := repos.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return repos, store
}

func TestMemoryDocumentStoreRoundTrip(t *testing.T) {
	store := NewMemoryDocumentStore()
	ctx := context.Background()

	found, err := store.Load(ctx, "missing", &[]string{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Error("missing key should report not found, not an error")
	}

	if err := store.Save(ctx, "k", []string{"a", "b"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	var out []string
	found, err = store.Load(ctx, "k", &out)
	if err != nil || !found {
		t.Fatalf("Load: found=%v err=%v", found, err)
	}
	if len(out) != 2 || out[0] != "a" {
		t.Errorf("unexpected round trip: %v", out)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if found, _ := store.Load(ctx, "k", &out); found {
		t.Error("deleted key should be gone")
	}
}

func TestInitSeedsOnce(t *testing.T) {
	repos, store := setupRepos(t)
	ctx := context.Background()

	if repos.Records.Count(ctx) != 2 {
		t.Errorf("fresh store should hold the 2 seed records, got %d", repos.Records.Count(ctx))
	}
	if len(repos.Parts.List(ctx)) != len(entity.DefaultSpareParts) {
		t.Error("fresh store should hold the factory catalog")
	}

	// Mutate, then re-init against the same store: the persisted state
	// must win over the seed.
	if err := repos.Records.Delete(ctx, "1001"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	reopened := NewRepositories(store)
	if err := reopened.Init(ctx); err != nil {
		t.Fatalf("re-Init: %v", err)
	}
	if reopened.Records.Count(ctx) != 1 {
		t.Errorf("re-init must load persisted state, got %d records", reopened.Records.Count(ctx))
	}
}

func TestInitEnsuresBootstrapAdmin(t *testing.T) {
	repos, store := setupRepos(t)
	ctx := context.Background()

	u, err := repos.Users.FindByEmail(ctx, BootstrapAdminEmail)
	if err != nil {
		t.Fatalf("bootstrap admin missing: %v", err)
	}
	if !u.IsAdmin || u.Password != BootstrapAdminPassword {
		t.Errorf("unexpected bootstrap account: %+v", u)
	}

	// Re-init must not duplicate the account.
	reopened := NewRepositories(store)
	if err := reopened.Init(ctx); err != nil {
		t.Fatalf("re-Init: %v", err)
	}
	count := 0
	for _, u := range reopened.Users.List(ctx) {
		if u.Email == BootstrapAdminEmail {
			count++
		}
	}
	if count != 1 {
		t.Errorf("bootstrap admin appears %d times, want exactly 1", count)
	}
}

func TestRecordUpsert(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	rec := &entity.RepairRecord{ID: "r-1", RMANumber: "RMA-1", Status: entity.StatusPending}
	if err := repos.Records.Upsert(ctx, rec); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	list := repos.Records.List(ctx)
	if list[0].ID != "r-1" {
		t.Error("new records must be prepended")
	}

	rec.Status = entity.StatusQuoted
	if err := repos.Records.Upsert(ctx, rec); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	updated := repos.Records.List(ctx)
	if len(updated) != len(list) {
		t.Error("re-upserting the same id must not grow the collection")
	}
	if updated[0].Status != entity.StatusQuoted {
		t.Error("upsert should update in place")
	}
}

func TestRecordListReturnsCopy(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	list := repos.Records.List(ctx)
	list[0].RMANumber = "MUTATED"

	again := repos.Records.List(ctx)
	if again[0].RMANumber == "MUTATED" {
		t.Error("List must return a copy, not the backing slice")
	}
}

func TestRecordDeleteMissingIDIsNoError(t *testing.T) {
	repos, _ := setupRepos(t)
	if err := repos.Records.Delete(context.Background(), "no-such-record"); err != nil {
		t.Errorf("deleting a missing id should not error: %v", err)
	}
}

func TestPartCreateRejectsDuplicateID(t *testing.T) {
	repos, _ := setupRepos(t)
	ctx := context.Background()

	err := repos.Parts.Create(ctx, &entity.Part{ID: "e-battery", Name: "Another Battery"})
	if err == nil {
		t.Error("duplicate part id must be rejected")
	}
}

func TestPartUpdateMissingIsNotFound(t *testing.T) {
	repos, _ := setupRepos(t)
	err := repos.Parts.Update(context.Background(), &entity.Part{ID: "ghost", Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserFindByEmailCaseInsensitive(t *testing.T) {
	repos, _ := setupRepos(t)
	if _, err := repos.Users.FindByEmail(context.Background(), "JEFF@ROBOMATE.CO.NZ"); err != nil {
		t.Errorf("email lookup should ignore case: %v", err)
	}
}
