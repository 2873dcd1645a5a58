package placeholder

// TodoDTO mirrors the upstream /todos response element. The upstream uses
// camelCase field names; translation to domain types happens in translator.go.
type TodoDTO struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// UserDTO mirrors the upstream /users response element. The upstream returns
// more fields (address, company, phone); only the ones this service exposes
// are decoded.
type UserDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
