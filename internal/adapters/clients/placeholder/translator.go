package placeholder

import "github.com/jsalvesen/placeholder-gateway/internal/domain"

// ToDomainTodo converts an upstream todo DTO to a domain entity.
func ToDomainTodo(dto *TodoDTO) domain.Todo {
	return domain.Todo{
		ID:        dto.ID,
		UserID:    dto.UserID,
		Title:     dto.Title,
		Completed: dto.Completed,
	}
}

// ToDomainTodoList converts an upstream todo array to domain entities,
// preserving order.
func ToDomainTodoList(dtos []TodoDTO) []domain.Todo {
	todos := make([]domain.Todo, len(dtos))
	for i := range dtos {
		todos[i] = ToDomainTodo(&dtos[i])
	}
	return todos
}

// ToDomainUser converts an upstream user DTO to a domain entity.
func ToDomainUser(dto *UserDTO) domain.User {
	return domain.User{
		ID:       dto.ID,
		Name:     dto.Name,
		Username: dto.Username,
		Email:    dto.Email,
	}
}

// ToDomainUserList converts an upstream user array to domain entities,
// preserving order.
func ToDomainUserList(dtos []UserDTO) []domain.User {
	users := make([]domain.User, len(dtos))
	for i := range dtos {
		users[i] = ToDomainUser(&dtos[i])
	}
	return users
}
