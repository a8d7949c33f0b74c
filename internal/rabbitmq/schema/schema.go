package schema

import "encoding/json"

// ResetLink is a request to deliver a password-reset link. The token travels
// in plaintext only inside the broker; it is never written to the database.
type ResetLink struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

func (r *ResetLink) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *ResetLink) Unmarshal(data []byte) error {
	return json.Unmarshal(data, r)
}
