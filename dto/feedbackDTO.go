package dto

type SubmitFeedbackRequest struct {
	NamaAnggota string `json:"namaAnggota"`
	IDAnggota   string `json:"idAnggota"`
	Masukan     string `json:"masukan" binding:"required"`
}

// FeedbackPrefillResponse pre-fills the feedback form from the member's first
// registration record. Empty fields when the member has no records yet.
type FeedbackPrefillResponse struct {
	NamaAnggota string `json:"namaAnggota"`
	IDAnggota   string `json:"idAnggota"`
}
