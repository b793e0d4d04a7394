package domain

// User is a staff login for the administration API.
type User struct {
	ID           int32  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	Disabled     bool   `json:"disabled"`
	PasswordHash string `json:"-"`
}
