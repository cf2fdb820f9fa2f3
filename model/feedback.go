package model

// Feedback is one saran/{feedbackId} entry. Written once by a member, never
// edited, deleted only by an admin.
type Feedback struct {
	NamaAnggota string `json:"namaAnggota,omitempty"`
	IDAnggota   string `json:"idAnggota,omitempty"`
	Masukan     string `json:"masukan,omitempty"`
	UID         string `json:"uid,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// FeedbackRow is one line of the admin feedback table.
type FeedbackRow struct {
	Key     string `json:"key"`
	Nama    string `json:"nama"`
	Masukan string `json:"masukan"`
	Tanggal string `json:"tanggal"`
}
