package models

// Profile holds the registered user's identity. The password is never part
// of this struct; it lives in the OS keyring.
type Profile struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
}
