package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-service/internal/domain/user"
)

// UserRepoPG implements the Repository interface using PostgreSQL and GORM.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
// The email column carries no unique constraint; uniqueness is a
// business rule checked in the service layer.
type UserSchema struct {
	ID        string    `gorm:"primaryKey"` // UUID primary key
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Email     string    `gorm:"not null;index"`
	CreatedAt time.Time // populated by GORM, preserves insertion order for GetAll
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// Add inserts a new user into the database, assigning a UUID when the
// entity carries none.
func (r *UserRepoPG) Add(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	id := u.ID
	if id == "" {
		id = uuid.NewString()
	}

	model := UserSchema{
		ID:        id,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("user created in db", zap.String("id", model.ID))
	return toEntity(&model), nil
}

// Update updates an existing user in the database.
func (r *UserRepoPG) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}
	if u.ID == "" {
		return nil, errors.New("user id cannot be empty")
	}

	updates := map[string]any{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
	}

	if err := r.db.WithContext(ctx).Model(&UserSchema{}).Where("id = ?", u.ID).Updates(updates).Error; err != nil {
		r.log.Error("failed to update user in db", zap.Error(err), zap.String("id", u.ID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	r.log.Info("user updated in db", zap.String("id", u.ID))
	return &user.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}, nil
}

// Delete removes a user from the database by ID.
func (r *UserRepoPG) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("user id cannot be empty")
	}

	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserSchema{}).Error; err != nil {
		r.log.Error("failed to delete user in db", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	r.log.Info("user deleted in db", zap.String("id", id))
	return nil
}

// GetByID retrieves a user from the database by their unique ID.
// Returns (nil, nil) when no user with the given ID exists.
func (r *UserRepoPG) GetByID(ctx context.Context, id string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found", zap.String("id", id))
			return nil, nil
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toEntity(&model), nil
}

// GetByEmail retrieves a user from the database by their email address.
// Returns (nil, nil) when no user with the given email exists.
func (r *UserRepoPG) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return toEntity(&model), nil
}

// GetAll retrieves all users from the database in insertion order.
func (r *UserRepoPG) GetAll(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]user.User, len(models))
	for i := range models {
		users[i] = *toEntity(&models[i])
	}

	return users, nil
}

// Exists checks whether a user with the given ID is present.
func (r *UserRepoPG) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserSchema{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.log.Error("failed to check user existence", zap.Error(err), zap.String("id", id))
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return count > 0, nil
}

func toEntity(m *UserSchema) *user.User {
	return &user.User{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
	}
}
