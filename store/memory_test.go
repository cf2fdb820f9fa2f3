package store

import (
	"context"
	"testing"
)

type record struct {
	Nama   string `json:"nama,omitempty"`
	Status string `json:"status,omitempty"`
}

func TestMemoryStoreSetGet(t *testing.T) {
	db := NewMemoryStore()
	ctx := context.Background()

	if err := db.Set(ctx, "users/u1/anggota/1000", record{Nama: "Ani", Status: "pending"}); err != nil {
		t.Fatal(err)
	}

	var got record
	if err := db.Get(ctx, "users/u1/anggota/1000", &got); err != nil {
		t.Fatal(err)
	}
	if got.Nama != "Ani" || got.Status != "pending" {
		t.Errorf("unexpected record: %+v", got)
	}

	var subtree map[string]record
	if err := db.Get(ctx, "users/u1/anggota", &subtree); err != nil {
		t.Fatal(err)
	}
	if len(subtree) != 1 {
		t.Errorf("expected one child, got %d", len(subtree))
	}
}

func TestMemoryStoreGetMissingPathLeavesValueUntouched(t *testing.T) {
	db := NewMemoryStore()

	got := record{Nama: "unchanged"}
	if err := db.Get(context.Background(), "users/tidak-ada", &got); err != nil {
		t.Fatal(err)
	}
	if got.Nama != "unchanged" {
		t.Errorf("missing path must not modify the destination, got %+v", got)
	}
}

func TestMemoryStoreUpdateMergesFields(t *testing.T) {
	db := NewMemoryStore()
	ctx := context.Background()

	if err := db.Set(ctx, "users/u1/anggota/1000", record{Nama: "Ani", Status: "pending"}); err != nil {
		t.Fatal(err)
	}
	if err := db.Update(ctx, "users/u1/anggota/1000", map[string]interface{}{"status": "Disetujui"}); err != nil {
		t.Fatal(err)
	}

	var got record
	if err := db.Get(ctx, "users/u1/anggota/1000", &got); err != nil {
		t.Fatal(err)
	}
	if got.Status != "Disetujui" {
		t.Errorf("expected merged status, got %q", got.Status)
	}
	if got.Nama != "Ani" {
		t.Errorf("update clobbered sibling field: %+v", got)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	db := NewMemoryStore()
	ctx := context.Background()

	if err := db.Set(ctx, "saran/a", record{Nama: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := db.Delete(ctx, "saran/a"); err != nil {
		t.Fatal(err)
	}

	var got map[string]record
	if err := db.Get(ctx, "saran", &got); err != nil {
		t.Fatal(err)
	}
	if _, ok := got["a"]; ok {
		t.Error("deleted entry still present")
	}

	// Deleting something that never existed is not an error.
	if err := db.Delete(ctx, "saran/tidak-ada"); err != nil {
		t.Errorf("delete of missing path: %v", err)
	}
}

func TestMemoryStorePushGeneratesDistinctKeys(t *testing.T) {
	db := NewMemoryStore()
	ctx := context.Background()

	k1, err := db.Push(ctx, "saran", record{Nama: "a"})
	if err != nil {
		t.Fatal(err)
	}
	k2, err := db.Push(ctx, "saran", record{Nama: "b"})
	if err != nil {
		t.Fatal(err)
	}
	if k1 == k2 || k1 == "" {
		t.Errorf("expected distinct non-empty keys, got %q and %q", k1, k2)
	}

	var got map[string]record
	if err := db.Get(ctx, "saran", &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("expected two entries, got %d", len(got))
	}
}
