package dataset

import (
	"testing"
)

func TestStore_PutGetList(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	ds, err := store.Put(Parse("100,F\n200,S"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if ds.ID == "" {
		t.Fatalf("Expected an assigned ID")
	}

	got, ok := store.Get(ds.ID)
	if !ok {
		t.Fatalf("Get(%s) missed", ds.ID)
	}
	if got.Size() != 2 {
		t.Errorf("Expected 2 records, got %d", got.Size())
	}

	list := store.List()
	if len(list) != 1 || list[0].ID != ds.ID {
		t.Errorf("Unexpected list result: %+v", list)
	}
}

func TestStore_ReloadFromCache(t *testing.T) {
	dir := t.TempDir()

	first := NewStore(dir)
	ds, err := first.Put(Parse("100,F\n150,F\n200,S"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// A fresh store over the same directory must see the persisted dataset.
	second := NewStore(dir)
	got, ok := second.Get(ds.ID)
	if !ok {
		t.Fatalf("Reloaded store is missing dataset %s", ds.ID)
	}
	if got.Size() != 3 || len(got.Suspensions()) != 1 {
		t.Errorf("Reloaded dataset corrupted: %+v", got.Summarize())
	}
}

func TestStore_GetUnknown(t *testing.T) {
	store := NewStore(t.TempDir())
	if _, ok := store.Get("ds-missing"); ok {
		t.Errorf("Expected a miss for an unknown ID")
	}
}
