package user

// CreateUserRequest represents the input for creating a new user.
// The identifier is assigned by the system on create.
type CreateUserRequest struct {
	FirstName string
	LastName  string
	Email     string
}

// UpdateUserRequest represents the input for updating an existing user.
// The target identifier comes from the request path, not the payload.
type UpdateUserRequest struct {
	FirstName string
	LastName  string
	Email     string
}

// User represents a user DTO (Data Transfer Object) for API responses.
// It is built fresh from the entity on every response and never aliases it.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}
