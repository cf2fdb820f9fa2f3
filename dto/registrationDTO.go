package dto

// SubmitRegistrationRequest carries the member-registration form. The five
// text fields are all required before anything is written; foto is optional
// and arrives as an inline data URI.
type SubmitRegistrationRequest struct {
	Nama      string `json:"nama" binding:"required"`
	Alamat    string `json:"alamat" binding:"required"`
	Telpon    string `json:"telpon" binding:"required"`
	NIK       string `json:"nik" binding:"required"`
	Pekerjaan string `json:"pekerjaan" binding:"required"`
	Foto      string `json:"foto"`
}

// EditRegistrationRequest carries an admin field edit. Exactly these five
// fields are overwritten; status and recordId are never touched here.
type EditRegistrationRequest struct {
	Nama      string `json:"nama" binding:"required"`
	Alamat    string `json:"alamat" binding:"required"`
	Telpon    string `json:"telpon" binding:"required"`
	NIK       string `json:"nik" binding:"required"`
	Pekerjaan string `json:"pekerjaan" binding:"required"`
}

// RegistrationSummary is the dashboard count bar, computed over the
// unfiltered list.
type RegistrationSummary struct {
	Total           int `json:"total"`
	Disetujui       int `json:"disetujui"`
	Ditolak         int `json:"ditolak"`
	BelumDitanggapi int `json:"belumDitanggapi"`
}

// CardResponse is the result of resolving a member's card. Status is
// "success" or "failed"; the remaining fields are only set on success.
type CardResponse struct {
	Status    string `json:"status"`
	UID       string `json:"uid,omitempty"`
	RecordID  string `json:"recordId,omitempty"`
	Nama      string `json:"nama,omitempty"`
	Alamat    string `json:"alamat,omitempty"`
	Telpon    string `json:"telpon,omitempty"`
	NIK       string `json:"nik,omitempty"`
	Pekerjaan string `json:"pekerjaan,omitempty"`
	Foto      string `json:"foto,omitempty"`
	Berlaku   string `json:"berlaku,omitempty"` // expiry, DD-MM-YYYY
	FrontFile string `json:"frontFile,omitempty"`
	BackFile  string `json:"backFile,omitempty"`
}
