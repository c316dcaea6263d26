package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/avastudio/avatar-api/internal/domain"
)

// MockAvatarRepository mocks the AvatarRepository interface
type MockAvatarRepository struct {
	mock.Mock
}

func (m *MockAvatarRepository) Insert(ctx context.Context, avatar *domain.Avatar) (int64, error) {
	args := m.Called(ctx, avatar)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAvatarRepository) Get(ctx context.Context, id int64) (*domain.Avatar, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Avatar), args.Error(1)
}

func (m *MockAvatarRepository) List(ctx context.Context, limit, offset int) ([]domain.Avatar, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Avatar), args.Get(1).(int64), args.Error(2)
}

func (m *MockAvatarRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLikeRepository mocks the LikeRepository interface
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Exists(ctx context.Context, avatarID int64, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, avatarID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Add(ctx context.Context, avatarID int64, userID uuid.UUID) error {
	args := m.Called(ctx, avatarID, userID)
	return args.Error(0)
}

func (m *MockLikeRepository) Remove(ctx context.Context, avatarID int64, userID uuid.UUID) error {
	args := m.Called(ctx, avatarID, userID)
	return args.Error(0)
}

func (m *MockLikeRepository) Count(ctx context.Context, avatarID int64) (int, error) {
	args := m.Called(ctx, avatarID)
	return args.Int(0), args.Error(1)
}

// MockVoteRepository mocks the VoteRepository interface
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Get(ctx context.Context, avatarID int64, userID uuid.UUID) (domain.VoteType, error) {
	args := m.Called(ctx, avatarID, userID)
	return args.Get(0).(domain.VoteType), args.Error(1)
}

func (m *MockVoteRepository) Set(ctx context.Context, avatarID int64, userID uuid.UUID, vote domain.VoteType) error {
	args := m.Called(ctx, avatarID, userID, vote)
	return args.Error(0)
}

func (m *MockVoteRepository) Clear(ctx context.Context, avatarID int64, userID uuid.UUID) error {
	args := m.Called(ctx, avatarID, userID)
	return args.Error(0)
}

func (m *MockVoteRepository) Score(ctx context.Context, avatarID int64) (int, error) {
	args := m.Called(ctx, avatarID)
	return args.Int(0), args.Error(1)
}

// MockBlobStore mocks the storage.BlobStore interface
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockBlobStore) KeyFromURL(url string) string {
	args := m.Called(url)
	return args.String(0)
}

// MockProvider mocks the provider.Provider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockProvider) Kind() domain.ArtifactKind {
	args := m.Called()
	return args.Get(0).(domain.ArtifactKind)
}

func (m *MockProvider) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockProvider) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Artifact, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}
