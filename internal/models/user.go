package models

// User is the authenticated operator profile returned by /login together
// with the bearer token. It is persisted between runs and cleared on logout.
type User struct {
	ID     int64  `json:"id"`
	RoleID int64  `json:"role_id"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

// Registration carries the fields for the multipart /register call.
// ImagePath, when set, points at a local avatar file.
type Registration struct {
	Username  string
	Password  string
	Email     string
	Name      string
	RoleID    int64
	ImagePath string
}
