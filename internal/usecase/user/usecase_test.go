package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	domain "user-service/internal/domain/user"
	apperrors "user-service/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) Add(ctx context.Context, u *domain.User) (*domain.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupTestService(t *testing.T) (*Service, *MockRepository) {
	mockRepo := new(MockRepository)
	logger := zaptest.NewLogger(t)
	svc := New(mockRepo, logger)
	return svc, mockRepo
}

// ==================== CREATE USER TESTS ====================

func TestCreateUser_Success(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	req := CreateUserRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
	}
	assignedID := uuid.NewString()

	mockRepo.On("GetByEmail", ctx, req.Email).Return(nil, nil)
	mockRepo.On("Add", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == "" && u.FirstName == req.FirstName && u.LastName == req.LastName && u.Email == req.Email
	})).Return(&domain.User{
		ID:        assignedID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}, nil)

	resp, err := svc.CreateUser(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, assignedID, resp.ID)
	assert.Equal(t, req.FirstName, resp.FirstName)
	assert.Equal(t, req.LastName, resp.LastName)
	assert.Equal(t, req.Email, resp.Email)

	mockRepo.AssertExpectations(t)
}

func TestCreateUser_EmailAlreadyExists(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	req := CreateUserRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
	}

	existing := &domain.User{ID: uuid.NewString(), FirstName: "Existing", LastName: "User", Email: req.Email}
	mockRepo.On("GetByEmail", ctx, req.Email).Return(existing, nil)

	resp, err := svc.CreateUser(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, resp)

	var conflictErr *apperrors.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "User already exists", err.Error())

	// The persistence write must never happen on conflict
	mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestCreateUser_UniquenessCheckFails(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	req := CreateUserRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
	}

	mockRepo.On("GetByEmail", ctx, req.Email).Return(nil, errors.New("connection refused"))

	resp, err := svc.CreateUser(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, resp)

	// A repository failure is an unclassified fault, not a conflict
	var conflictErr *apperrors.ConflictError
	assert.False(t, errors.As(err, &conflictErr))
	mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

// ==================== GET USER TESTS ====================

func TestGetUser_Success(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	id := uuid.NewString()
	expected := &domain.User{ID: id, FirstName: "John", LastName: "Doe", Email: "john@example.com"}
	mockRepo.On("GetByID", ctx, id).Return(expected, nil)

	resp, err := svc.GetUser(ctx, id)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, expected.ID, resp.ID)
	assert.Equal(t, expected.FirstName, resp.FirstName)
	assert.Equal(t, expected.LastName, resp.LastName)
	assert.Equal(t, expected.Email, resp.Email)

	mockRepo.AssertExpectations(t)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	id := uuid.NewString()
	mockRepo.On("GetByID", ctx, id).Return(nil, nil)

	resp, err := svc.GetUser(ctx, id)

	// Absence is a normal outcome, not an error
	assert.NoError(t, err)
	assert.Nil(t, resp)

	mockRepo.AssertExpectations(t)
}

// ==================== UPDATE USER TESTS ====================

func TestUpdateUser_Success(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	id := uuid.NewString()
	stored := &domain.User{ID: id, FirstName: "John", LastName: "Doe", Email: "john@example.com"}
	req := UpdateUserRequest{
		FirstName: "Johnny",
		LastName:  "Doerr",
		Email:     "johnny@example.com",
	}

	mockRepo.On("GetByID", ctx, id).Return(stored, nil)
	mockRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == id && u.FirstName == req.FirstName && u.LastName == req.LastName && u.Email == req.Email
	})).Return(&domain.User{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}, nil)

	resp, err := svc.UpdateUser(ctx, id, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, id, resp.ID, "identifier must not change on update")
	assert.Equal(t, req.FirstName, resp.FirstName)
	assert.Equal(t, req.LastName, resp.LastName)
	assert.Equal(t, req.Email, resp.Email)

	mockRepo.AssertExpectations(t)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	id := uuid.NewString()
	mockRepo.On("GetByID", ctx, id).Return(nil, nil)

	resp, err := svc.UpdateUser(ctx, id, UpdateUserRequest{
		FirstName: "Johnny",
		LastName:  "Doerr",
		Email:     "johnny@example.com",
	})

	assert.NoError(t, err)
	assert.Nil(t, resp)

	// The persistence write must never happen for a missing user
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

// TestUpdateUser_DuplicateEmailAllowed documents a known gap: updates do not
// re-check email uniqueness against other users, so an update can introduce
// a duplicate email. This matches the current behavior on purpose.
func TestUpdateUser_DuplicateEmailAllowed(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	id := uuid.NewString()
	stored := &domain.User{ID: id, FirstName: "John", LastName: "Doe", Email: "john@example.com"}
	req := UpdateUserRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "taken@example.com", // belongs to another user
	}

	mockRepo.On("GetByID", ctx, id).Return(stored, nil)
	mockRepo.On("Update", ctx, mock.Anything).Return(&domain.User{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}, nil)

	resp, err := svc.UpdateUser(ctx, id, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, req.Email, resp.Email)

	// No uniqueness lookup happens on update
	mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

// ==================== DELETE USER TESTS ====================

func TestDeleteUser_Success(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	id := uuid.NewString()
	mockRepo.On("Exists", ctx, id).Return(true, nil)
	mockRepo.On("Delete", ctx, id).Return(nil)

	deleted, err := svc.DeleteUser(ctx, id)

	assert.NoError(t, err)
	assert.True(t, deleted)

	mockRepo.AssertNumberOfCalls(t, "Delete", 1)
	mockRepo.AssertExpectations(t)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	id := uuid.NewString()
	mockRepo.On("Exists", ctx, id).Return(false, nil)

	deleted, err := svc.DeleteUser(ctx, id)

	// Not found is not an error
	assert.NoError(t, err)
	assert.False(t, deleted)

	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

// ==================== LIST USERS TESTS ====================

func TestListUsers_Success(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	expected := []domain.User{
		{ID: uuid.NewString(), FirstName: "John", LastName: "Doe", Email: "john@example.com"},
		{ID: uuid.NewString(), FirstName: "Jane", LastName: "Smith", Email: "jane@example.com"},
	}
	mockRepo.On("GetAll", ctx).Return(expected, nil)

	resp, err := svc.ListUsers(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	for i := range expected {
		assert.Equal(t, expected[i].ID, resp[i].ID)
		assert.Equal(t, expected[i].FirstName, resp[i].FirstName)
		assert.Equal(t, expected[i].LastName, resp[i].LastName)
		assert.Equal(t, expected[i].Email, resp[i].Email)
	}

	mockRepo.AssertExpectations(t)
}

func TestListUsers_Empty(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetAll", ctx).Return([]domain.User{}, nil)

	resp, err := svc.ListUsers(ctx)

	assert.NoError(t, err)
	assert.Empty(t, resp)

	mockRepo.AssertExpectations(t)
}
