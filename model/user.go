package model

import "time"

type User struct {
	UID       string    `json:"uid,omitempty"`
	Nama      string    `json:"nama,omitempty"`
	Email     string    `json:"email,omitempty"`
	Password  string    `json:"password,omitempty"` // bcrypt hash
	Role      string    `json:"role,omitempty"`     // "user" or "admin"
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// UserNode is the full users/{uid} subtree: the account fields plus the
// member's registration records keyed by recordId.
type UserNode struct {
	User
	Anggota map[string]Registration `json:"anggota,omitempty"`
}
