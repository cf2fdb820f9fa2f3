package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/model"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

// cardValidityYears is how long a membership card stays valid, counted from
// the submission instant encoded in the record key.
const cardValidityYears = 5

// CardResult is the outcome of resolving a member's card. Found is false when
// the member has no approved record; that is a normal negative outcome, not
// an error.
type CardResult struct {
	Found        bool
	UID          string
	RecordID     string
	Registration model.Registration
	Berlaku      string // expiry date, DD-MM-YYYY
	FrontFile    string
	BackFile     string
}

// ResolveCard fetches the member's anggota subtree once and picks the first
// record in chronological order whose status is Disetujui. Multiple approved
// records are possible; first match wins. A record whose key does not decode
// as a millisecond timestamp cannot produce a valid expiry and resolves to
// not-found.
func ResolveCard(ctx context.Context, db store.TreeStore, uid string) (CardResult, error) {
	var anggota map[string]model.Registration
	if err := db.Get(ctx, "users/"+uid+"/anggota", &anggota); err != nil {
		return CardResult{}, err
	}

	for _, key := range sortedRecordKeys(anggota) {
		rec := anggota[key]
		if rec.Status != model.StatusApproved {
			continue
		}
		berlaku, err := cardExpiry(key)
		if err != nil {
			return CardResult{}, nil
		}
		name := rec.Nama
		if name == "" {
			name = "kartu_anggota"
		}
		return CardResult{
			Found:        true,
			UID:          uid,
			RecordID:     key,
			Registration: rec,
			Berlaku:      berlaku,
			FrontFile:    name + "_depan.png",
			BackFile:     name + "_belakang.png",
		}, nil
	}
	return CardResult{}, nil
}

// cardExpiry decodes the record key as a millisecond timestamp and formats
// the same calendar day five years on. Dates are computed in UTC.
func cardExpiry(recordID string) (string, error) {
	ms, err := strconv.ParseInt(recordID, 10, 64)
	if err != nil {
		return "", err
	}
	t := time.UnixMilli(ms).UTC()
	return fmt.Sprintf("%02d-%02d-%d", t.Day(), int(t.Month()), t.Year()+cardValidityYears), nil
}
