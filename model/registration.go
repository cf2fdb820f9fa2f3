package model

// Registration status values. The Indonesian strings are stored verbatim in
// the database and shown verbatim in the admin table.
const (
	StatusPending    = "pending"
	StatusApproved   = "Disetujui"
	StatusRejected   = "Ditolak"
	StatusNoResponse = "Belum Ditanggapi" // display value when status is absent
)

// Registration is one membership application, stored under
// users/{uid}/anggota/{recordId}. The recordId is the submission time in
// milliseconds and doubles as membership number and expiry basis.
type Registration struct {
	Nama      string `json:"nama,omitempty"`
	Alamat    string `json:"alamat,omitempty"`
	Telpon    string `json:"telpon,omitempty"`
	NIK       string `json:"nik,omitempty"`
	Pekerjaan string `json:"pekerjaan,omitempty"`
	Foto      string `json:"foto,omitempty"` // inline data URI, optional
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// RegistrationRow is one line of the admin dashboard table: a registration
// joined with its owner uid and record key, placeholders filled in.
type RegistrationRow struct {
	No        int    `json:"no"`
	UID       string `json:"uid"`
	RecordID  string `json:"recordId"`
	Nama      string `json:"nama"`
	Alamat    string `json:"alamat"`
	Telpon    string `json:"telpon"`
	NIK       string `json:"nik"`
	Pekerjaan string `json:"pekerjaan"`
	Status    string `json:"status"`
	Foto      string `json:"foto,omitempty"`
}
