package domain

// Admin is a university administrator account.
type Admin struct {
	ID           int64  `json:"id"`
	AdminID      string `json:"adminId"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
