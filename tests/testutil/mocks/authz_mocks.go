package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
)

// MockPolicyOracle is a mock of authz.PolicyOracle
type MockPolicyOracle struct {
	mock.Mock
}

func NewMockPolicyOracle(t *testing.T) *MockPolicyOracle {
	m := &MockPolicyOracle{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPolicyOracle) Evaluate(ctx context.Context, subject authz.Subject, kind authz.ResourceKind, action authz.Action) (authz.Decision, error) {
	args := m.Called(ctx, subject, kind, action)
	return args.Get(0).(authz.Decision), args.Error(1)
}

// MockPermissionResolver is a mock of authz.PermissionResolver
type MockPermissionResolver struct {
	mock.Mock
}

func NewMockPermissionResolver(t *testing.T) *MockPermissionResolver {
	m := &MockPermissionResolver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPermissionResolver) Resolve(ctx context.Context, subject authz.Subject, kind authz.ResourceKind) (authz.PermissionSet, error) {
	args := m.Called(ctx, subject, kind)
	return args.Get(0).(authz.PermissionSet), args.Error(1)
}
