package domain

import "strings"

// Todo represents a single task item belonging to a user. Instances are
// transient: they are built from the upstream API response on each request,
// never mutated afterwards.
type Todo struct {
	ID        int64
	UserID    int64
	Title     string
	Completed bool
}

// Validate checks the record's required fields.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = MsgRequired
	}
	if t.ID <= 0 {
		fields["id"] = "must be positive"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
