package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
)

// MockTransactionRepository is a mock of repository.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func NewMockTransactionRepository(t *testing.T) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Transaction, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context, scope repository.OwnerScope, offset, limit int) ([]*entity.Transaction, int, error) {
	args := m.Called(ctx, scope, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entity.Transaction), args.Int(1), args.Error(2)
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	args := m.Called(ctx, transaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	args := m.Called(ctx, transaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Transaction, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}
