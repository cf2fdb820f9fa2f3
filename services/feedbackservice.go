package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/model"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

var ErrEmptyFeedback = errors.New("masukan must not be empty")

// FeedbackPrefill pre-fills the feedback form from the member's first
// registration record (chronological order). A member without records gets an
// empty prefill, not an error.
func FeedbackPrefill(ctx context.Context, db store.TreeStore, uid string) (namaAnggota, idAnggota string, err error) {
	var anggota map[string]model.Registration
	if err := db.Get(ctx, "users/"+uid+"/anggota", &anggota); err != nil {
		return "", "", err
	}
	keys := sortedRecordKeys(anggota)
	if len(keys) == 0 {
		return "", "", nil
	}
	return anggota[keys[0]].Nama, keys[0], nil
}

// SubmitFeedback stores one saran entry under a generated key. Feedback is
// write-once; there is no edit path.
func SubmitFeedback(ctx context.Context, db store.TreeStore, uid string, fb model.Feedback) (string, error) {
	if strings.TrimSpace(fb.Masukan) == "" {
		return "", ErrEmptyFeedback
	}
	fb.UID = uid
	fb.CreatedAt = time.Now().Format(time.RFC3339)
	return db.Push(ctx, "saran", fb)
}

// ListFeedback flattens the saran subtree into table rows, newest first.
// CreatedAt is RFC3339 so the lexicographic comparison is chronological.
func ListFeedback(ctx context.Context, db store.TreeStore) ([]model.FeedbackRow, error) {
	var saran map[string]model.Feedback
	if err := db.Get(ctx, "saran", &saran); err != nil {
		return nil, err
	}

	rows := make([]model.FeedbackRow, 0, len(saran))
	for key, fb := range saran {
		rows = append(rows, model.FeedbackRow{
			Key:     key,
			Nama:    orPlaceholder(fb.NamaAnggota),
			Masukan: orPlaceholder(fb.Masukan),
			Tanggal: orPlaceholder(fb.CreatedAt),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Tanggal != rows[j].Tanggal {
			return rows[i].Tanggal > rows[j].Tanggal
		}
		return rows[i].Key < rows[j].Key
	})
	return rows, nil
}

// FilterFeedback keeps rows whose nama or masukan contains the query,
// case-insensitive. Empty query returns the list unchanged.
func FilterFeedback(rows []model.FeedbackRow, query string) []model.FeedbackRow {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	out := []model.FeedbackRow{}
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Nama), q) ||
			strings.Contains(strings.ToLower(row.Masukan), q) {
			out = append(out, row)
		}
	}
	return out
}

// DeleteFeedback removes one saran entry permanently.
func DeleteFeedback(ctx context.Context, db store.TreeStore, key string) error {
	return db.Delete(ctx, "saran/"+key)
}
