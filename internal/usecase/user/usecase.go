package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domain "user-service/internal/domain/user"
	apperrors "user-service/pkg/errors"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing different implementations
// (e.g., PostgreSQL, in-memory) to be used interchangeably. Lookup
// methods return (nil, nil) when no matching record exists.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)       // Retrieve user by ID
	GetByEmail(ctx context.Context, email string) (*domain.User, error) // Retrieve user by email
	GetAll(ctx context.Context) ([]domain.User, error)                  // Retrieve all users in insertion order
	Add(ctx context.Context, u *domain.User) (*domain.User, error)      // Persist a new user, assigning an ID
	Update(ctx context.Context, u *domain.User) (*domain.User, error)   // Update an existing user
	Exists(ctx context.Context, id string) (bool, error)                // Check whether a user exists
	Delete(ctx context.Context, id string) error                        // Delete user by ID
}

// Service implements the business logic for user management operations.
// It provides a clean separation between the transport layer and data layer.
type Service struct {
	repo Repository  // Repository for data access
	log  *zap.Logger // Logger for structured logging
}

// New creates a new instance of Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log}
}

// CreateUser creates a new user after checking email uniqueness.
// The uniqueness check and the insert are two separate repository calls;
// concurrent creates with the same email can race between them.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	s.log.Info("creating user", zap.String("email", in.Email))

	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		s.log.Warn("email already taken", zap.String("email", in.Email))
		return nil, apperrors.NewConflictError("user", "User already exists")
	}

	created, err := s.repo.Add(ctx, &domain.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	})
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	s.log.Info("user created", zap.String("id", created.ID))
	return toDTO(created), nil
}

// UpdateUser overwrites the mutable fields of an existing user and persists
// it. Returns (nil, nil) when no user with the given ID exists. Email
// uniqueness is only checked on create, so an update can introduce a
// duplicate email.
func (s *Service) UpdateUser(ctx context.Context, id string, in UpdateUserRequest) (*User, error) {
	s.log.Info("updating user", zap.String("id", id))

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("failed to load user", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if existing == nil {
		s.log.Info("user not found for update", zap.String("id", id))
		return nil, nil
	}

	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.Email = in.Email

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		s.log.Error("failed to update user", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toDTO(updated), nil
}

// DeleteUser deletes a user by ID. Returns true when the user existed at
// call time and was deleted, false when there was nothing to delete.
func (s *Service) DeleteUser(ctx context.Context, id string) (bool, error) {
	s.log.Info("deleting user", zap.String("id", id))

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		s.log.Error("failed to check user existence", zap.String("id", id), zap.Error(err))
		return false, err
	}
	if !exists {
		s.log.Info("user not found for delete", zap.String("id", id))
		return false, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete user", zap.String("id", id), zap.Error(err))
		return false, err
	}

	return true, nil
}

// GetUser retrieves a user by ID. Returns (nil, nil) when absent.
func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("failed to get user", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	return toDTO(u), nil
}

// ListUsers retrieves all users mapped to DTOs, in the order the
// repository returns them.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	domainUsers, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = *toDTO(&du)
	}

	return users, nil
}

// toDTO builds a transfer object from the entity.
func toDTO(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
