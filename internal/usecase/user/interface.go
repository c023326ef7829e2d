package user

import "context"

// Usecase defines the interface for user business logic operations.
// Lookups report absence with a nil result and nil error; absence is a
// normal outcome, not a fault.
type Usecase interface {
	CreateUser(ctx context.Context, in CreateUserRequest) (*User, error)
	UpdateUser(ctx context.Context, id string, in UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
}
