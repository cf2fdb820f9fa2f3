package services

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/model"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

var ErrIncompleteForm = errors.New("all registration fields are required")

const fieldPlaceholder = "-"

// FlattenRegistrations turns the users subtree into the flat dashboard rows.
// Admin accounts are skipped. Ordering is explicit rather than map order:
// uids ascending, then record keys chronological (numeric keys are the
// submission time in ms). Row numbers are assigned over the final order.
func FlattenRegistrations(users map[string]model.UserNode) []model.RegistrationRow {
	uids := make([]string, 0, len(users))
	for uid := range users {
		uids = append(uids, uid)
	}
	sort.Strings(uids)

	rows := []model.RegistrationRow{}
	for _, uid := range uids {
		node := users[uid]
		if node.Role == "admin" {
			continue
		}
		for _, key := range sortedRecordKeys(node.Anggota) {
			rec := node.Anggota[key]
			rows = append(rows, model.RegistrationRow{
				No:        len(rows) + 1,
				UID:       uid,
				RecordID:  key,
				Nama:      orPlaceholder(rec.Nama),
				Alamat:    orPlaceholder(rec.Alamat),
				Telpon:    orPlaceholder(rec.Telpon),
				NIK:       orPlaceholder(rec.NIK),
				Pekerjaan: orPlaceholder(rec.Pekerjaan),
				Status:    orDefault(rec.Status, model.StatusNoResponse),
				Foto:      rec.Foto,
			})
		}
	}
	return rows
}

// FilterRegistrations keeps the rows whose nama, alamat, nik or pekerjaan
// contains the query, case-insensitive. An empty query returns the list
// unchanged. Relative order and row numbers are preserved.
func FilterRegistrations(rows []model.RegistrationRow, query string) []model.RegistrationRow {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	out := []model.RegistrationRow{}
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Nama), q) ||
			strings.Contains(strings.ToLower(row.Alamat), q) ||
			strings.Contains(strings.ToLower(row.NIK), q) ||
			strings.Contains(strings.ToLower(row.Pekerjaan), q) {
			out = append(out, row)
		}
	}
	return out
}

// SubmitRegistration creates a new pending record under the member's anggota
// subtree, keyed by the submission time in milliseconds. Validation happens
// before any store call; a rejected form writes nothing.
func SubmitRegistration(ctx context.Context, db store.TreeStore, uid string, reg model.Registration) (string, error) {
	if strings.TrimSpace(reg.Nama) == "" ||
		strings.TrimSpace(reg.Alamat) == "" ||
		strings.TrimSpace(reg.Telpon) == "" ||
		strings.TrimSpace(reg.NIK) == "" ||
		strings.TrimSpace(reg.Pekerjaan) == "" {
		return "", ErrIncompleteForm
	}

	now := time.Now()
	recordID := strconv.FormatInt(now.UnixMilli(), 10)
	reg.Status = model.StatusPending
	reg.CreatedAt = now.Format(time.RFC3339)

	if err := db.Set(ctx, registrationPath(uid, recordID), reg); err != nil {
		return "", err
	}
	return recordID, nil
}

// ApproveRegistration flips the record status to Disetujui. Re-applying the
// current status is harmless; the write is idempotent.
func ApproveRegistration(ctx context.Context, db store.TreeStore, uid, recordID string) error {
	return db.Update(ctx, registrationPath(uid, recordID), map[string]interface{}{
		"status": model.StatusApproved,
	})
}

// RejectRegistration flips the record status to Ditolak.
func RejectRegistration(ctx context.Context, db store.TreeStore, uid, recordID string) error {
	return db.Update(ctx, registrationPath(uid, recordID), map[string]interface{}{
		"status": model.StatusRejected,
	})
}

// EditRegistration overwrites the five editable text fields and nothing else;
// status and recordId are never part of the update.
func EditRegistration(ctx context.Context, db store.TreeStore, uid, recordID string, reg model.Registration) error {
	return db.Update(ctx, registrationPath(uid, recordID), map[string]interface{}{
		"nama":      reg.Nama,
		"alamat":    reg.Alamat,
		"telpon":    reg.Telpon,
		"nik":       reg.NIK,
		"pekerjaan": reg.Pekerjaan,
	})
}

// DeleteRegistration removes the record permanently. The confirmation step
// lives in the client; there is no soft delete.
func DeleteRegistration(ctx context.Context, db store.TreeStore, uid, recordID string) error {
	return db.Delete(ctx, registrationPath(uid, recordID))
}

func registrationPath(uid, recordID string) string {
	return "users/" + uid + "/anggota/" + recordID
}

// sortedRecordKeys orders record keys chronologically: numeric keys ascending
// by value, then any non-numeric stragglers in lexicographic order.
func sortedRecordKeys(anggota map[string]model.Registration) []string {
	keys := make([]string, 0, len(anggota))
	for key := range anggota {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.ParseInt(keys[i], 10, 64)
		b, berr := strconv.ParseInt(keys[j], 10, 64)
		switch {
		case aerr == nil && berr == nil:
			return a < b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

func orPlaceholder(s string) string {
	return orDefault(s, fieldPlaceholder)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
