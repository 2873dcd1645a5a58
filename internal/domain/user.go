package domain

// User represents an account on the upstream API. Only the identifier is
// mandatory; the display name, login name, and email may all be absent.
type User struct {
	ID       int64
	Name     string
	Username string
	Email    string
}

// Validate checks the record's required fields.
func (u *User) Validate() error {
	if u.ID <= 0 {
		return &ValidationError{Fields: map[string]string{"id": "must be positive"}}
	}
	return nil
}
