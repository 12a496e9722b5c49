package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
)

// MockInstitutionRepository is a mock of repository.InstitutionRepository
type MockInstitutionRepository struct {
	mock.Mock
}

func NewMockInstitutionRepository(t *testing.T) *MockInstitutionRepository {
	m := &MockInstitutionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockInstitutionRepository) FindByID(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Institution, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Institution), args.Error(1)
}

func (m *MockInstitutionRepository) List(ctx context.Context, scope repository.OwnerScope, offset, limit int) ([]*entity.Institution, int, error) {
	args := m.Called(ctx, scope, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.Institution), args.Int(1), args.Error(2)
}

func (m *MockInstitutionRepository) Create(ctx context.Context, institution *entity.Institution) (*entity.Institution, error) {
	args := m.Called(ctx, institution)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Institution), args.Error(1)
}

func (m *MockInstitutionRepository) Update(ctx context.Context, institution *entity.Institution) (*entity.Institution, error) {
	args := m.Called(ctx, institution)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Institution), args.Error(1)
}

func (m *MockInstitutionRepository) Delete(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Institution, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Institution), args.Error(1)
}
