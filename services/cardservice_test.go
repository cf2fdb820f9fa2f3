package services

import (
	"context"
	"testing"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/model"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

func TestResolveCardNoApprovedRecords(t *testing.T) {
	db := store.NewMemoryStore()
	ctx := context.Background()

	for _, key := range []string{"1000", "2000", "3000"} {
		if err := db.Set(ctx, "users/u1/anggota/"+key, model.Registration{Nama: "Budi", Status: model.StatusPending}); err != nil {
			t.Fatal(err)
		}
	}

	result, err := ResolveCard(ctx, db, "u1")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if result.Found {
		t.Errorf("expected failed result with only pending records, got %+v", result)
	}
}

func TestResolveCardEmptySubtree(t *testing.T) {
	db := store.NewMemoryStore()

	result, err := ResolveCard(context.Background(), db, "tidak-ada")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if result.Found {
		t.Errorf("expected failed result for user without records")
	}
}

func TestResolveCardExpiryFromMillisecondKey(t *testing.T) {
	db := store.NewMemoryStore()
	ctx := context.Background()

	// 1700000000000 ms = 2023-11-14 UTC, so the card runs to 14-11-2028.
	if err := db.Set(ctx, "users/u1/anggota/1700000000000", model.Registration{
		Nama: "Budi Santoso", Status: model.StatusApproved,
	}); err != nil {
		t.Fatal(err)
	}

	result, err := ResolveCard(ctx, db, "u1")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !result.Found {
		t.Fatal("expected a card for the approved record")
	}
	if result.Berlaku != "14-11-2028" {
		t.Errorf("expected expiry 14-11-2028, got %s", result.Berlaku)
	}
	if result.FrontFile != "Budi Santoso_depan.png" || result.BackFile != "Budi Santoso_belakang.png" {
		t.Errorf("unexpected artifact names: %s / %s", result.FrontFile, result.BackFile)
	}
}

func TestResolveCardFirstApprovedWins(t *testing.T) {
	db := store.NewMemoryStore()
	ctx := context.Background()

	if err := db.Set(ctx, "users/u1/anggota/1000", model.Registration{Nama: "Lama", Status: model.StatusApproved}); err != nil {
		t.Fatal(err)
	}
	if err := db.Set(ctx, "users/u1/anggota/2000", model.Registration{Nama: "Baru", Status: model.StatusApproved}); err != nil {
		t.Fatal(err)
	}

	result, err := ResolveCard(ctx, db, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if result.RecordID != "1000" {
		t.Errorf("expected the chronologically first approved record, got %s", result.RecordID)
	}
}

func TestResolveCardMalformedKey(t *testing.T) {
	db := store.NewMemoryStore()
	ctx := context.Background()

	if err := db.Set(ctx, "users/u1/anggota/bukan-angka", model.Registration{Nama: "Budi", Status: model.StatusApproved}); err != nil {
		t.Fatal(err)
	}

	result, err := ResolveCard(ctx, db, "u1")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if result.Found {
		t.Errorf("a key that is not a timestamp cannot yield a valid card")
	}
}

func TestCardExpiryFormat(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"1700000000000", "14-11-2028"},
		{"946684800000", "01-01-2005"}, // 2000-01-01, single-digit day and month padded
	}
	for _, tc := range cases {
		got, err := cardExpiry(tc.key)
		if err != nil {
			t.Errorf("key %s: unexpected error %v", tc.key, err)
			continue
		}
		if got != tc.want {
			t.Errorf("key %s: expected %s, got %s", tc.key, tc.want, got)
		}
	}

	if _, err := cardExpiry("abc"); err == nil {
		t.Error("expected error for non-numeric key")
	}
}
