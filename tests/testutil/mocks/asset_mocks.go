package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
)

// MockAssetRepository is a mock of repository.AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func NewMockAssetRepository(t *testing.T) *MockAssetRepository {
	m := &MockAssetRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAssetRepository) FindByID(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Asset, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Asset), args.Error(1)
}

func (m *MockAssetRepository) List(ctx context.Context, scope repository.OwnerScope, offset, limit int) ([]*entity.Asset, int, error) {
	args := m.Called(ctx, scope, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.Asset), args.Int(1), args.Error(2)
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *entity.Asset) (*entity.Asset, error) {
	args := m.Called(ctx, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Asset), args.Error(1)
}

func (m *MockAssetRepository) Update(ctx context.Context, asset *entity.Asset) (*entity.Asset, error) {
	args := m.Called(ctx, asset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Asset), args.Error(1)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Asset, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Asset), args.Error(1)
}
